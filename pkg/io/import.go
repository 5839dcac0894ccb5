package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/pageorder/pkg/errors"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// maxLineSize bounds a single input line. Sequences are short; this only
// protects against feeding in a binary file.
const maxLineSize = 1 << 20

// Input is the decoded content of an input file.
type Input struct {
	Rules     *rules.Set
	Sequences []rules.Sequence
	Warnings  []ParseWarning

	// RuleLines is the number of rule lines read, duplicates included.
	RuleLines int
}

// ParseWarning describes an input line that was skipped.
type ParseWarning struct {
	Line   int    `json:"line"` // 1-based line number
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// String formats the warning for log output.
func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %s: %q", w.Line, w.Reason, w.Text)
}

// Read decodes rules and sequences from r.
//
// Lines containing '|' are parsed as rules and lines containing ',' or a
// lone integer as sequences. Lines that fail to parse are recorded in
// Input.Warnings and skipped. Read only returns an error when r itself
// fails.
//
// Read does not close r.
func Read(r io.Reader) (*Input, error) {
	var (
		pairs []rules.Rule
		in    = &Input{}
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.Contains(line, "|") {
			rule, err := rules.ParseRule(line)
			if err != nil {
				in.warn(lineNo, line, err)
				continue
			}
			pairs = append(pairs, rule)
			continue
		}

		seq, err := rules.ParseSequence(line)
		if err != nil {
			in.warn(lineNo, line, err)
			continue
		}
		in.Sequences = append(in.Sequences, seq)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}

	in.Rules = rules.New(pairs)
	in.RuleLines = len(pairs)
	return in, nil
}

// Load opens the file at path and decodes it with [Read].
//
// A missing file yields a FILE_NOT_FOUND error; other open failures are
// INVALID_INPUT. Both wrap the underlying *os.PathError.
func Load(path string) (*Input, error) {
	if err := errors.ValidateInputPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

func (in *Input) warn(line int, text string, err error) {
	in.Warnings = append(in.Warnings, ParseWarning{
		Line:   line,
		Text:   text,
		Reason: errors.UserMessage(err),
	})
}
