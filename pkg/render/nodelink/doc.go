// Package nodelink renders the precedence graph of a sequence as a
// node-link diagram.
//
// # Overview
//
// Nodes are the items of the sequence and arrows point from the item that
// must come first to the item that must follow. Rows come from
// [transform.AssignLayers], so every arrow points downward and items in
// the same row are unconstrained relative to each other.
//
// # Usage
//
// Build and normalize the graph, then convert it to DOT and render:
//
//	g := dag.FromRules(rs, seq)
//	res := transform.Normalize(g)
//	dot := nodelink.ToDOT(g, nodelink.Options{
//	    Violations: order.Violations(seq, rs),
//	    Broken:     res.BrokenEdges,
//	})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Highlighting
//
// Rules the input sequence violates are drawn in red. Edges removed by
// [transform.BreakCycles] are drawn dashed so a contradictory rule set
// stays visible in the diagram.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. The DOT output can also be fed to external Graphviz tools.
//
// [transform.AssignLayers]: github.com/matzehuels/pageorder/pkg/dag/transform
// [transform.BreakCycles]: github.com/matzehuels/pageorder/pkg/dag/transform
package nodelink
