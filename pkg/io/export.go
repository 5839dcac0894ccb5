package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/pageorder/pkg/dag"
	"github.com/matzehuels/pageorder/pkg/rules"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID  rules.Item `json:"id"`
	Pos int        `json:"pos"`
	Row *int       `json:"row,omitempty"`
}

type edge struct {
	From rules.Item `json:"from"`
	To   rules.Item `json:"to"`
}

// WriteText writes rs and seqs in the input format: one rule per line, a
// blank line, then one sequence per line. A nil rule set writes only the
// sequences.
func WriteText(w io.Writer, rs *rules.Set, seqs []rules.Sequence) error {
	bw := bufio.NewWriter(w)
	if rs.Len() > 0 {
		for _, r := range rs.Rules() {
			fmt.Fprintln(bw, r.String())
		}
		fmt.Fprintln(bw)
	}
	for _, s := range seqs {
		fmt.Fprintln(bw, s.String())
	}
	return bw.Flush()
}

// WriteGraphJSON encodes a precedence graph as JSON and writes it to w.
// Rows are included only when non-zero.
func WriteGraphJSON(g *dag.DAG, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()
	out := graph{
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, len(edges)),
	}

	for i, n := range nodes {
		nd := node{ID: n.ID, Pos: n.Pos}
		if n.Row != 0 {
			row := n.Row
			nd.Row = &row
		}
		out.Nodes[i] = nd
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: e.From, To: e.To}
	}
	return WriteJSON(w, out)
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportText writes rs and seqs to a file at path.
// This is a convenience wrapper around [WriteText] for file-based output.
func ExportText(path string, rs *rules.Set, seqs []rules.Sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteText(f, rs, seqs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
