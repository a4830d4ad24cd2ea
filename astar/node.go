package astar

import "github.com/katalvlaran/gridpath/grid"

// Node is one step of a candidate path. Nodes are immutable once built and
// form a forest through their parent links; the start node has no parent.
type Node struct {
	loc       grid.Location
	parent    *Node
	cost      int
	heuristic float64
}

// NewNode builds a node reached from parent with the given accumulated cost
// and remaining-cost estimate. parent is nil for the start node.
func NewNode(loc grid.Location, parent *Node, cost int, heuristic float64) *Node {
	return &Node{loc: loc, parent: parent, cost: cost, heuristic: heuristic}
}

// Location returns the grid cell this node stands on.
func (n *Node) Location() grid.Location { return n.loc }

// Parent returns the node that generated n, or nil for the start node.
func (n *Node) Parent() *Node { return n.parent }

// Cost returns the accumulated path cost from the start.
func (n *Node) Cost() int { return n.cost }

// Heuristic returns the estimated remaining cost to the goal.
func (n *Node) Heuristic() float64 { return n.heuristic }

// Estimate returns cost + heuristic, the frontier priority.
func (n *Node) Estimate() float64 { return float64(n.cost) + n.heuristic }
