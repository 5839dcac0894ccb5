package dag

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/pageorder/pkg/rules"
)

func TestAddNode_Duplicate(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{ID: 1}); err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}
	if err := g.AddNode(Node{ID: 1}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode() error = %v, want %v", err, ErrDuplicateNodeID)
	}
}

func TestAddEdge_Errors(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: 1})
	_ = g.AddNode(Node{ID: 2})

	tests := []struct {
		name string
		edge Edge
		want error
	}{
		{"valid", Edge{From: 1, To: 2}, nil},
		{"unknown source", Edge{From: 9, To: 2}, ErrUnknownSourceNode},
		{"unknown target", Edge{From: 1, To: 9}, ErrUnknownTargetNode},
		{"self loop", Edge{From: 1, To: 1}, ErrSelfLoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.edge); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge(%v) error = %v, want %v", tt.edge, err, tt.want)
			}
		})
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: 1})
	_ = g.AddNode(Node{ID: 2})
	_ = g.AddEdge(Edge{From: 1, To: 2})

	g.RemoveEdge(1, 2)
	g.RemoveEdge(2, 1) // missing edge is a no-op

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	if g.InDegree(2) != 0 || g.OutDegree(1) != 0 {
		t.Error("adjacency lists not updated")
	}
}

func TestFromRules_SkipsInertRules(t *testing.T) {
	rs := rules.New([]rules.Rule{{Before: 1, After: 2}, {Before: 2, After: 99}, {Before: 98, After: 99}})
	g := FromRules(rs, rules.Sequence{2, 1, 3})

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if n, ok := g.Node(1); !ok || n.Pos != 1 {
		t.Errorf("Node(1) = %+v, %v; want Pos 1", n, ok)
	}
}

func TestFromRules_RepeatedItems(t *testing.T) {
	g := FromRules(rules.New(nil), rules.Sequence{4, 5, 4})
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if n, _ := g.Node(4); n.Pos != 0 {
		t.Errorf("Node(4).Pos = %d, want 0", n.Pos)
	}
}

func TestSources(t *testing.T) {
	rs := rules.New([]rules.Rule{{Before: 1, After: 3}, {Before: 2, After: 3}})
	g := FromRules(rs, rules.Sequence{3, 2, 1})

	var got []rules.Item
	for _, n := range g.Sources() {
		got = append(got, n.ID)
	}
	if want := []rules.Item{2, 1}; !slices.Equal(got, want) {
		t.Errorf("Sources() = %v, want %v", got, want)
	}
}

func TestTopoOrder(t *testing.T) {
	// Rules from the worked example, restricted as needed by each sequence.
	rs := rules.New([]rules.Rule{
		{Before: 47, After: 53}, {Before: 97, After: 13}, {Before: 97, After: 61}, {Before: 97, After: 47}, {Before: 75, After: 29}, {Before: 61, After: 13}, {Before: 75, After: 53},
		{Before: 29, After: 13}, {Before: 97, After: 29}, {Before: 53, After: 29}, {Before: 61, After: 53}, {Before: 97, After: 53}, {Before: 61, After: 29}, {Before: 47, After: 13},
		{Before: 75, After: 47}, {Before: 97, After: 75}, {Before: 47, After: 61}, {Before: 75, After: 61}, {Before: 47, After: 29}, {Before: 75, After: 13}, {Before: 53, After: 13},
	})

	tests := []struct {
		seq  rules.Sequence
		want []rules.Item
	}{
		{rules.Sequence{75, 47, 61, 53, 29}, []rules.Item{75, 47, 61, 53, 29}},
		{rules.Sequence{75, 97, 47, 61, 53}, []rules.Item{97, 75, 47, 61, 53}},
		{rules.Sequence{61, 13, 29}, []rules.Item{61, 29, 13}},
		{rules.Sequence{97, 13, 75, 29, 47}, []rules.Item{97, 75, 47, 29, 13}},
	}

	for _, tt := range tests {
		got, err := FromRules(rs, tt.seq).TopoOrder()
		if err != nil {
			t.Errorf("TopoOrder(%v) error: %v", tt.seq, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("TopoOrder(%v) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}

func TestTopoOrder_Cycle(t *testing.T) {
	rs := rules.New([]rules.Rule{{Before: 1, After: 2}, {Before: 2, After: 1}, {Before: 3, After: 1}})
	g := FromRules(rs, rules.Sequence{1, 2, 3})

	got, err := g.TopoOrder()
	if !errors.Is(err, ErrGraphHasCycle) {
		t.Fatalf("TopoOrder() error = %v, want %v", err, ErrGraphHasCycle)
	}
	if want := []rules.Item{3}; !slices.Equal(got, want) {
		t.Errorf("TopoOrder() partial = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	acyclic := FromRules(rules.New([]rules.Rule{{Before: 1, After: 2}}), rules.Sequence{2, 1})
	if err := acyclic.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if c := acyclic.FindCycle(); c != nil {
		t.Errorf("FindCycle() = %v, want nil", c)
	}

	cyclic := FromRules(rules.New([]rules.Rule{{Before: 1, After: 2}, {Before: 2, After: 1}}), rules.Sequence{1, 2})
	if err := cyclic.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() error = %v, want %v", err, ErrGraphHasCycle)
	}
	if want := []rules.Item{1, 2, 1}; !slices.Equal(cyclic.FindCycle(), want) {
		t.Errorf("FindCycle() = %v, want %v", cyclic.FindCycle(), want)
	}
}

func TestRows(t *testing.T) {
	g := FromRules(rules.New(nil), rules.Sequence{5, 6, 7})
	g.SetRows(map[rules.Item]int{6: 1, 7: 1, 42: 3})

	if got, want := g.RowIDs(), []int{0, 1}; !slices.Equal(got, want) {
		t.Errorf("RowIDs() = %v, want %v", got, want)
	}
	if got := g.NodesInRow(1); len(got) != 2 || got[0].ID != 6 || got[1].ID != 7 {
		t.Errorf("NodesInRow(1) = %v, want nodes 6 and 7", got)
	}
}

func TestDisplacement(t *testing.T) {
	tests := []struct {
		name     string
		from, to rules.Sequence
		want     int
	}{
		{"identical", rules.Sequence{1, 2, 3}, rules.Sequence{1, 2, 3}, 0},
		{"one swap", rules.Sequence{1, 2, 3}, rules.Sequence{2, 1, 3}, 1},
		{"reversed", rules.Sequence{1, 2, 3, 4}, rules.Sequence{4, 3, 2, 1}, 6},
		{"unknown item ignored", rules.Sequence{1, 2}, rules.Sequence{2, 9, 1}, 1},
		{"empty", nil, rules.Sequence{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Displacement(tt.from, tt.to); got != tt.want {
				t.Errorf("Displacement(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
