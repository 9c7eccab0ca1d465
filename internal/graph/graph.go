// Package graph builds the display feed for the rendering layer: the node
// and edge lists of the mind map, and the pixel sizes derived from the
// engine's normalized weights.
package graph

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finmap-dev/finmap/internal/hierarchy"
	"github.com/finmap-dev/finmap/internal/model"
)

// Node is one mind-map node.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Class string `json:"class"`
}

// Edge is a directed parent-to-child link.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// classCenter styles the root synthesis node, which belongs to no branch.
const classCenter = "center"

// Pixel size range for nodes: a zero-weight node renders at minSize, the
// maximum-value node at minSize+sizeSpan.
const (
	minSize  = 30
	sizeSpan = 70
)

var span = decimal.NewFromInt(sizeSpan)

// Elements returns the nodes and edges of the hierarchy's mind map.
// Accounts keep declaration order; the root synthesis node comes last and
// links to the four branch roots and the balancing account.
func Elements(h *hierarchy.Hierarchy) ([]Node, []Edge) {
	accounts := h.Accounts()
	nodes := make([]Node, 0, len(accounts)+1)
	var edges []Edge

	for _, a := range accounts {
		nodes = append(nodes, Node{ID: a.Name, Label: label(a.Name), Class: string(a.Class)})
		if a.Kind == model.KindDerived {
			for _, c := range a.Children {
				edges = append(edges, Edge{Source: a.Name, Target: c})
			}
		}
	}

	root := h.RootName()
	nodes = append(nodes, Node{ID: root, Label: label(root), Class: classCenter})
	roots := h.BranchRoots()
	for _, name := range []string{roots.Assets, roots.Liabilities, roots.Income, roots.Expenses} {
		edges = append(edges, Edge{Source: root, Target: name})
	}
	edges = append(edges, Edge{Source: root, Target: h.BalancingName()})

	return nodes, edges
}

// Sizes maps normalized weights into node pixel sizes.
func Sizes(weights map[string]decimal.Decimal) map[string]int {
	sizes := make(map[string]int, len(weights))
	for name, w := range weights {
		px := w.Mul(span).Round(0).IntPart() + minSize
		sizes[name] = int(px)
	}
	return sizes
}

func label(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
