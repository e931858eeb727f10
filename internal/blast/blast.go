// Package blast propagates explosion shock waves: which cells get bashed,
// how hard, and which occupants are hurt or flung.
package blast

import (
	"fmt"
	"math/rand"

	"blastradius/internal/grid"
	"blastradius/internal/world"

	"go.uber.org/zap"
)

// Params describes one blast.
type Params struct {
	Force  float64 // peak force at the epicenter
	Radius float64
	Fire   bool
}

// Propagator applies a blast to a world and reports the damage dealt.
type Propagator interface {
	Propagate(w world.World, epicenter grid.Point, p Params) world.DamageMap
	Variant() Variant
}

// Variant selects a propagation strategy.
type Variant uint8

const (
	// Legacy expands a cost wave through open terrain with binned falloff.
	Legacy Variant = iota
	// Sorted visits cells in straight-line distance order and flings occupants.
	Sorted
)

func (v Variant) String() string {
	if v == Sorted {
		return "sorted"
	}
	return "legacy"
}

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "legacy":
		return Legacy, nil
	case "sorted", "":
		return Sorted, nil
	}
	return Legacy, fmt.Errorf("unknown blast variant %q", s)
}

// Config tunes both strategies.
type Config struct {
	Variant Variant
	Metric  grid.Metric
	ZLevels bool
	// Dissipation is the fraction of peak force lost between repeated
	// terrain bashes in the sorted strategy.
	Dissipation float64
	// FlingCoefficient converts force per gram into fling velocity.
	FlingCoefficient float64
	// Strict panics on a negative radius instead of logging it.
	Strict bool
}

const (
	DefaultDissipation      = 0.15
	DefaultFlingCoefficient = 40.75
	// ZLevelDist is how many planar steps one vertical step is worth.
	ZLevelDist = 4.0
)

// DefaultConfig returns the sorted strategy with Euclidean distances.
func DefaultConfig() Config {
	return Config{
		Variant:          Sorted,
		Metric:           grid.Euclidean,
		ZLevels:          true,
		Dissipation:      DefaultDissipation,
		FlingCoefficient: DefaultFlingCoefficient,
	}
}

// Frame is a snapshot of the cells a blast has reached, for drawing.
// Values are the fraction of peak force felt at each cell.
type Frame struct {
	Epicenter grid.Point
	Radius    float64
	Cells     map[grid.Point]float64
	Final     bool
}

// FrameHook receives frames as a blast advances. It must not mutate the world.
type FrameHook func(Frame)

// New builds the strategy named by cfg.Variant.
func New(cfg Config, rng *rand.Rand, log *zap.Logger, hook FrameHook) Propagator {
	if log == nil {
		log = zap.NewNop()
	}
	b := base{cfg: cfg, rng: rng, log: log, hook: hook}
	if cfg.Variant == Legacy {
		return &legacy{base: b}
	}
	return &sorted{base: b}
}

type base struct {
	cfg  Config
	rng  *rand.Rand
	log  *zap.Logger
	hook FrameHook
}

func (b *base) emit(f Frame) {
	if b.hook != nil {
		b.hook(f)
	}
}

// rejected screens out blasts that cannot touch anything. reach is the
// radius as the strategy measures it; a blast with no reach does nothing,
// not even at the epicenter.
func (b *base) rejected(epicenter grid.Point, p Params, reach float64) bool {
	if p.Radius < 0 {
		if b.cfg.Strict {
			panic(fmt.Sprintf("blast: negative radius %g at %v", p.Radius, epicenter))
		}
		b.log.Warn("blast with negative radius ignored",
			zap.Stringer("epicenter", epicenter), zap.Float64("radius", p.Radius))
		return true
	}
	return reach <= 0 || p.Force <= 0
}
