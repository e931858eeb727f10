package arena

import (
	"errors"
	"math/rand"
	"testing"

	"blastradius/assets"
	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
	"blastradius/internal/world"
)

func testArena() *Arena {
	return Open(12, 12, rand.New(rand.NewSource(1)), nil)
}

func zombie(t *testing.T) assets.CreatureDef {
	t.Helper()
	def, ok := assets.Creature("zombie")
	if !ok {
		t.Fatal("zombie missing from bestiary")
	}
	return def
}

func TestSpawnRejectsWallsAndBodies(t *testing.T) {
	a := testArena()
	if _, err := a.Spawn(zombie(t), grid.P(0, 0)); !errors.Is(err, ErrBlocked) {
		t.Errorf("spawn on wall: err = %v; want ErrBlocked", err)
	}
	if _, err := a.Spawn(zombie(t), grid.P(3, 3)); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if _, err := a.Spawn(zombie(t), grid.P(3, 3)); !errors.Is(err, ErrOccupied) {
		t.Errorf("second spawn: err = %v; want ErrOccupied", err)
	}
}

func TestOccupantAtFollowsMoves(t *testing.T) {
	a := testArena()
	id, _ := a.Spawn(zombie(t), grid.P(3, 3))
	o, ok := a.OccupantAt(grid.P(3, 3))
	if !ok || o.ID() != world.OccupantID(id) {
		t.Fatal("expected the zombie at (3,3)")
	}
	o.KnockBackTo(grid.P(5, 5))
	if _, ok := a.OccupantAt(grid.P(3, 3)); ok {
		t.Error("old cell should be empty after a move")
	}
	if o2, ok := a.OccupantAt(grid.P(5, 5)); !ok || o2.Pos() != grid.P(5, 5) {
		t.Error("zombie should now be at (5,5)")
	}
}

func TestOccupantDiesAndLeavesIndex(t *testing.T) {
	a := testArena()
	a.Spawn(zombie(t), grid.P(4, 4))
	o, _ := a.OccupantAt(grid.P(4, 4))
	o.ApplyDamage(world.Torso, 1000)
	if !o.Dead() {
		t.Error("occupant should be dead")
	}
	if _, ok := a.OccupantAt(grid.P(4, 4)); ok {
		t.Error("dead creatures no longer occupy cells")
	}
	if len(a.Messages) == 0 {
		t.Error("a death should be reported")
	}
}

func TestPlayerOccupant(t *testing.T) {
	a := testArena()
	if _, err := a.SpawnPlayer(grid.P(2, 2)); err != nil {
		t.Fatal(err)
	}
	o, ok := a.OccupantAt(grid.P(2, 2))
	if !ok || !o.Player() || !o.Humanoid() {
		t.Fatal("expected a humanoid player")
	}
	if len(o.BodyParts()) != 6 {
		t.Errorf("humanoids have 6 parts, got %d", len(o.BodyParts()))
	}
	o.ApplyStatus(world.StatusBlind, 4)
	if got := a.ECS.Get(a.Player, component.CEffects).(component.Effects).Active; len(got) != 1 || got[0].Kind != component.EffectBlind {
		t.Errorf("unexpected effects %+v", got)
	}
}

func TestTerrainQueries(t *testing.T) {
	a := testArena()
	a.Map.Set(grid.P(5, 5), gamemap.MakeWindow())
	if !a.Impassable(grid.P(5, 5)) || !a.PassableOrThinObstacle(grid.P(5, 5)) {
		t.Error("windows block bodies but not area shapes")
	}
	if !a.Impassable(grid.P(-1, 0)) || a.PassableOrThinObstacle(grid.P(-1, 0)) {
		t.Error("out of bounds is impassable")
	}
	if a.ObstacleDensity(grid.P(0, 0)) != 100 || a.ObstacleDensity(grid.P(3, 3)) != 0 {
		t.Error("walls are dense and floors are open")
	}
}

func TestLineOfSight(t *testing.T) {
	a := testArena()
	if !a.LineOfSight(grid.P(2, 2), grid.P(8, 2), 0) {
		t.Error("open floor should be visible")
	}
	if a.LineOfSight(grid.P(2, 2), grid.P(8, 2), 3) {
		t.Error("range limit ignored")
	}
	a.Map.Set(grid.P(5, 2), gamemap.MakeWall())
	if a.LineOfSight(grid.P(2, 2), grid.P(8, 2), 0) {
		t.Error("wall should block sight")
	}
	if !a.LineOfSight(grid.P(2, 2), grid.P(5, 2), 0) {
		t.Error("the blocking cell itself is visible")
	}
}

func TestIgniteSkipsWalls(t *testing.T) {
	a := testArena()
	a.Ignite(grid.P(0, 0), 3)
	a.Ignite(grid.P(2, 2), 3)
	if len(a.Map.At(grid.P(0, 0)).Fields) != 0 {
		t.Error("walls do not burn")
	}
	if a.Map.At(grid.P(2, 2)).Fields[world.FieldFire] != 3 {
		t.Error("floor should be on fire")
	}
}

func TestAnomalies(t *testing.T) {
	a := testArena()
	turret, _ := assets.Creature("turret")
	a.Spawn(turret, grid.P(3, 3))
	a.EMP(grid.P(3, 3))
	o, _ := a.OccupantAt(grid.P(3, 3))
	if hp := a.ECS.Get(ecsID(o), component.CHealth).(component.Health); hp.Current != turret.MaxHP-empDamage {
		t.Errorf("turret HP = %d; want %d", hp.Current, turret.MaxHP-empDamage)
	}

	a.SetTrap(grid.P(4, 4), world.TrapGoo)
	a.SetTrap(grid.P(0, 0), world.TrapPortal)
	if a.Traps[grid.P(4, 4)] != world.TrapGoo {
		t.Error("trap not set")
	}
	if _, ok := a.Traps[grid.P(0, 0)]; ok {
		t.Error("traps need walkable ground")
	}

	a.SpawnAnomaly(grid.P(6, 6))
	if _, ok := a.OccupantAt(grid.P(6, 6)); !ok {
		t.Error("anomaly should have spawned")
	}

	a.Map.Set(grid.P(0, 5), gamemap.MakeWall())
	a.Destroy(grid.P(0, 5))
	if a.Map.At(grid.P(0, 5)).Kind != gamemap.TileRubble {
		t.Error("destroyed wall should be rubble")
	}
}

func ecsID(o world.Occupant) ecs.EntityID { return ecs.EntityID(o.ID()) }
