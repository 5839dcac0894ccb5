package transform

import "github.com/matzehuels/pageorder/pkg/dag"

// AssignLayers assigns nodes to rows based on their longest-path depth.
//
// AssignLayers uses Kahn's algorithm. Each node is placed one row below the
// deepest of its parents, so:
//   - Source nodes (no incoming edges) are at row 0
//   - Every rule points from a lower row number to a higher one
//
// Existing row assignments are overwritten and the maximum row is returned.
//
// # Cycles
//
// Nodes on a cycle never reach zero in-degree and stay at row 0. Run
// [BreakCycles] first to get meaningful rows.
func AssignLayers(g *dag.DAG) int {
	nodes := g.Nodes()
	inDegree := make(map[int]int, len(nodes))
	rows := make(map[int]int, len(nodes))
	queue := make([]int, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		rows[n.ID] = 0
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	maxRow := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
				maxRow = max(maxRow, row)
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
	return maxRow
}
