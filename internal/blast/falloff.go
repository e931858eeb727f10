package blast

import (
	"math/rand"

	"blastradius/internal/world"
)

// Falloff is the binned force multiplier: full strength in the inner half
// of the radius, half strength in the outer half, nothing beyond.
func Falloff(radius, distance float64) float64 {
	switch {
	case distance <= radius/2:
		return 1.0
	case distance <= radius:
		return 0.5
	}
	return 0
}

// ItemFalloff scales item damage linearly to zero at the radius.
func ItemFalloff(radius, distance float64) float64 {
	if radius <= 0 {
		return 1
	}
	return max(1-distance/radius, 0)
}

var sizeFactor = [...]float64{
	world.SizeTiny:   0.5,
	world.SizeSmall:  0.8,
	world.SizeMedium: 1.0,
	world.SizeLarge:  1.5,
	world.SizeHuge:   2.0,
}

// SizeFalloff is Falloff scaled by how much blast a body catches.
func SizeFalloff(size world.Size, radius, distance float64) float64 {
	k := 1.0
	if int(size) < len(sizeFactor) {
		k = sizeFactor[size]
	}
	return k * Falloff(radius, distance)
}

// FireIntensity is the fire left behind by a blast of the given force.
func FireIntensity(force float64) int {
	n := 1
	if force > 10 {
		n++
	}
	if force > 30 {
		n++
	}
	return n
}

// partHit is one row of the body-part table shared by both strategies.
type partHit struct {
	part      world.BodyPart
	low, high float64
	armorMult float64
}

var blastParts = [...]partHit{
	{world.Torso, 0.5, 1.0, 0.5},
	{world.Head, 0.5, 1.0, 0.5},
	{world.LegL, 0.75, 1.25, 0.4},
	{world.LegR, 0.75, 1.25, 0.4},
	{world.ArmL, 0.75, 1.25, 0.4},
	{world.ArmR, 0.75, 1.25, 0.4},
}

// rngInt returns a uniform integer in [lo, hi].
func rngInt(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// hitHumanoid spreads force over the six blast parts. Every part is rolled
// even once the occupant is dead.
func hitHumanoid(r *rand.Rand, occ world.Occupant, force float64) int {
	total := 0
	for _, bp := range blastParts {
		dmg := rngInt(r, int(force*bp.low), int(force*bp.high))
		if dmg <= 0 {
			continue
		}
		total += occ.DealDamage(bp.part, world.Bash(float64(dmg), bp.armorMult))
	}
	return total
}
