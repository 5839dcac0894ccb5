// Package io reads rule-and-sequence input files and writes sequences and
// precedence graphs back out.
//
// # Input Format
//
// Input is line oriented. A line holding "<before>|<after>" is a rule and a
// line of comma-separated integers is a sequence:
//
//	47|53
//	97|13
//
//	75,47,61,53,29
//	97,61,53,29,13
//
// Blank lines are skipped. The two sections are conventionally separated
// by one blank line, but rules and sequences are recognized by their shape,
// not their position. Any other line produces a [ParseWarning] and is
// dropped; a malformed line never fails the whole read.
//
// # Output
//
// [WriteText] writes rules and sequences in the input format, so the
// output of "pageorder fix" can be fed back in. [WriteGraphJSON] exports
// the precedence graph of one sequence:
//
//	{
//	  "nodes": [{"id": 75, "pos": 0}, {"id": 97, "pos": 1, "row": 0}],
//	  "edges": [{"from": 97, "to": 75}]
//	}
//
// [WriteJSON] is the shared indented encoder used for run reports.
package io
