// Package render groups the visual output formats for precedence graphs.
//
// The [nodelink] subpackage renders a sequence's precedence graph as a
// Graphviz node-link diagram, in DOT or SVG form:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/pageorder/pkg/render/nodelink
package render
