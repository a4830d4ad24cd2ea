package astar

import "github.com/zyedidia/generic/heap"

// frontierEntry pairs a node with its insertion sequence number.
type frontierEntry struct {
	node *Node
	seq  uint64
}

// lessEntry orders by Estimate ascending, then by insertion order.
func lessEntry(a, b frontierEntry) bool {
	fa, fb := a.node.Estimate(), b.node.Estimate()
	if fa != fb {
		return fa < fb
	}

	return a.seq < b.seq
}

// Frontier is a binary min-heap of nodes keyed by cost + heuristic.
// Entries with equal keys pop in insertion order.
//
// The frontier has no notion of location identity: several entries for the
// same cell may coexist, and the engine discards the stale ones at pop time.
type Frontier struct {
	h   *heap.Heap[frontierEntry]
	seq uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{h: heap.New[frontierEntry](lessEntry)}
}

// Push inserts n.
// Complexity: O(log n).
func (f *Frontier) Push(n *Node) {
	f.h.Push(frontierEntry{node: n, seq: f.seq})
	f.seq++
}

// Pop removes and returns the node with the smallest estimate.
// Returns ErrEmptyFrontier when there is nothing to pop.
// Complexity: O(log n).
func (f *Frontier) Pop() (*Node, error) {
	e, ok := f.h.Pop()
	if !ok {
		return nil, ErrEmptyFrontier
	}

	return e.node, nil
}

// Peek returns the next node without removing it.
func (f *Frontier) Peek() (*Node, bool) {
	e, ok := f.h.Peek()

	return e.node, ok
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier) Len() int { return f.h.Size() }

// IsEmpty reports whether Len() == 0.
func (f *Frontier) IsEmpty() bool { return f.h.Size() == 0 }
