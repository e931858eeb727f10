// Package wavefront grows a cheapest-path tree outward from a point over
// passable terrain and replays it as a push or pull of everything on it.
package wavefront

import (
	"cmp"
	"slices"

	"blastradius/internal/grid"
	"blastradius/internal/world"

	"github.com/zyedidia/generic/heap"
)

// Node is one reached cell: the cheapest known cost and the cell it was
// reached from. The center is its own origin.
type Node struct {
	Pos  grid.Point
	From grid.Point
	Cost float64
}

// Expander runs a uniform-cost expansion. MaxRange limits how far from the
// center cells may be; MaxExpand caps how many cells are expanded before
// only already discovered cells may still be relaxed. Zero means unbounded.
type Expander struct {
	MaxRange  int
	MaxExpand int

	nodes []Node
	index map[grid.Point]int
}

type entry struct {
	idx  int
	cost float64
}

func (e *Expander) contains(p grid.Point) bool {
	_, ok := e.index[p]
	return ok
}

// enqueue records a route to pos. A known node is updated in place when
// the new route is cheaper; only new nodes are queued.
func (e *Expander) enqueue(open *heap.Heap[entry], pos, from grid.Point, cost float64) bool {
	if i, ok := e.index[pos]; ok {
		if cost < e.nodes[i].Cost {
			e.nodes[i].From = from
			e.nodes[i].Cost = cost
		}
		return false
	}
	e.index[pos] = len(e.nodes)
	e.nodes = append(e.nodes, Node{Pos: pos, From: from, Cost: cost})
	open.Push(entry{idx: len(e.nodes) - 1, cost: cost})
	return true
}

// Run expands from center and returns how many cells were expanded.
// Previous results are discarded.
func (e *Expander) Run(t world.Terrain, center grid.Point) int {
	e.nodes = e.nodes[:0]
	e.index = make(map[grid.Point]int)
	open := heap.New(func(a, b entry) bool { return a.cost < b.cost })
	e.enqueue(open, center, center, 0)

	expanded := 0
	for open.Size() > 0 {
		cur, _ := open.Pop()
		n := e.nodes[cur.idx]
		expanded++
		for _, d := range grid.Neighbors8 {
			pt := n.Pos.Add(d)
			if t.Impassable(pt) || t.ObstructedByVehicleRotation(n.Pos, pt) {
				continue
			}
			if e.MaxRange > 0 && grid.Euclidean.RLDist(center, pt) > e.MaxRange {
				continue
			}
			if e.MaxExpand > 0 && expanded > e.MaxExpand && !e.contains(pt) {
				continue
			}
			e.enqueue(open, pt, n.Pos, n.Cost+grid.TrigDist(n.Pos, pt))
		}
	}
	return expanded
}

// Nodes returns the reached cells in their current order.
func (e *Expander) Nodes() []Node { return e.nodes }

// SortAscending orders nodes cheapest first, keeping discovery order on ties.
func (e *Expander) SortAscending() {
	slices.SortStableFunc(e.nodes, func(a, b Node) int { return cmp.Compare(a.Cost, b.Cost) })
	e.reindex()
}

// SortDescending orders nodes costliest first, keeping discovery order on ties.
func (e *Expander) SortDescending() {
	slices.SortStableFunc(e.nodes, func(a, b Node) int { return cmp.Compare(b.Cost, a.Cost) })
	e.reindex()
}

func (e *Expander) reindex() {
	for i, n := range e.nodes {
		e.index[n.Pos] = i
	}
}
