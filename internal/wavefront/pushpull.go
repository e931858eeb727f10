package wavefront

import (
	"blastradius/internal/grid"
	"blastradius/internal/world"
)

// MoveOptions selects what a push or pull carries along.
type MoveOptions struct {
	Creatures bool
	Items     bool
	Fields    bool
	// Caster stays put when ExemptCaster is set.
	Caster       world.OccupantID
	ExemptCaster bool
}

// ApplyPushPull expands radius cells around center and shifts everything
// selected by opts one step along the expansion tree: away from the center
// for a push, toward it for a pull. It returns the number of steps replayed.
func ApplyPushPull(w world.World, center grid.Point, radius int, push bool, opts MoveOptions) int {
	e := &Expander{MaxRange: radius}
	e.Run(w, center)
	if push {
		e.SortDescending()
	} else {
		e.SortAscending()
	}

	steps := 0
	for _, n := range e.Nodes() {
		if n.From == n.Pos {
			continue
		}
		from, to := n.Pos, n.From
		if push {
			from, to = n.From, n.Pos
		}
		move(w, from, to, opts)
		steps++
	}
	return steps
}

func move(w world.World, from, to grid.Point, opts MoveOptions) {
	if opts.Creatures {
		if o, ok := w.OccupantAt(from); ok && !(opts.ExemptCaster && o.ID() == opts.Caster) {
			o.KnockBackTo(to)
		}
	}
	if opts.Items {
		w.MoveItems(from, to)
	}
	if opts.Fields {
		w.MoveField(from, to)
	}
}
