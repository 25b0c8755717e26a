// Connected-components projection over a full Walk run.

package traverse

import (
	"fmt"

	"github.com/graphtide/graphtide/core"
)

// ConnectedComponents partitions g into its connected components using a
// full BFS or DFS traversal and returns only the by-component node lists,
// in ascending seed order. Any kind other than BFS or DFS fails with
// ErrUnsupportedKind.
//
// Each component list equals that component's slice of the traversal
// order; callers needing parents, levels, or the cycle flag as well
// should invoke Walk directly.
func ConnectedComponents(g *core.Graph, kind Kind) ([][]core.Node, error) {
	if kind != BFS && kind != DFS {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	res, err := Walk(g, kind)
	if err != nil {
		return nil, err
	}

	return res.Components, nil
}
