package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pageorder/pkg/dag"
	"github.com/matzehuels/pageorder/pkg/observability"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes input position and row in node labels.
	// When false, only the item is shown.
	Detailed bool

	// Violations are the rules broken by the input sequence. Matching
	// edges are drawn in red.
	Violations []rules.Rule

	// Broken are edges removed from g to make it acyclic. They are drawn
	// dashed in addition to the edges still in g.
	Broken []dag.Edge
}

// ToDOT converts a precedence graph to Graphviz DOT format.
// Nodes sharing a row are placed on the same rank.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %d [label=%q];\n", n.ID, fmtLabel(*n, opts.Detailed))
	}

	rows := g.RowIDs()
	if len(rows) > 1 {
		buf.WriteString("\n")
		for _, row := range rows {
			ids := make([]string, 0)
			for _, n := range g.NodesInRow(row) {
				ids = append(ids, strconv.Itoa(n.ID))
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	violated := make(map[dag.Edge]bool, len(opts.Violations))
	for _, r := range opts.Violations {
		violated[dag.Edge{From: r.Before, To: r.After}] = true
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d%s;\n", e.From, e.To, fmtEdgeAttrs(violated[e], false))
	}
	for _, e := range opts.Broken {
		fmt.Fprintf(&buf, "  %d -> %d%s;\n", e.From, e.To, fmtEdgeAttrs(violated[e], true))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n dag.Node, detailed bool) string {
	if !detailed {
		return strconv.Itoa(n.ID)
	}
	return fmt.Sprintf("%d\npos: %d\nrow: %d", n.ID, n.Pos, n.Row)
}

func fmtEdgeAttrs(violated, broken bool) string {
	var attrs []string
	if violated {
		attrs = append(attrs, "color=red", "penwidth=2")
	}
	if broken {
		attrs = append(attrs, "style=dashed", "constraint=false")
	}
	if len(attrs) == 0 {
		return ""
	}
	return " [" + strings.Join(attrs, ", ") + "]"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) (svg []byte, err error) {
	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, "svg", strings.Count(dot, "label="))
	defer func() { hooks.OnRenderComplete(ctx, "svg", time.Since(start), err) }()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from a
// zero origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
