package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const testDT = 1.0 / 60

// newBallStore builds a store with the left and top walls, a paddle out of
// the way and a ball at pos moving with v.
func newBallStore(pos, v core.Vec2) (*Store, Arena) {
	arena := NewArena(900, 600, 20)
	s := NewStore()
	s.Spawn(Entity{Kind: KindWall, Wall: WallLeft, Box: arena.Wall(WallLeft)})
	s.Spawn(Entity{Kind: KindWall, Wall: WallTop, Box: arena.Wall(WallTop)})
	s.Spawn(Entity{Kind: KindPaddle, Box: box(0, -240, 120, 20)})
	s.Spawn(Entity{Kind: KindBall, Box: core.NewBox(pos, core.V(30, 30)), Velocity: v, Kinematic: true})
	return s, arena
}

func TestLeftWallBounce(t *testing.T) {
	s, arena := newBallStore(core.V(-440, 0), core.V(-100, 0))

	r := Tick(s, arena, 500, testDT, 0)

	if got := s.Ball().Velocity; got != core.V(100, 0) {
		t.Errorf("velocity = %v, want (100, 0)", got)
	}
	if len(r.Hits) != 1 || r.Hits[0].Side != SideRight || !r.Hits[0].Flipped {
		t.Errorf("hits = %+v, want one flipped hit on the wall's right face", r.Hits)
	}
}

func TestDepartingContactIsNoop(t *testing.T) {
	s, arena := newBallStore(core.V(-440, 0), core.V(50, 0))

	r := Tick(s, arena, 500, testDT, 0)

	if got := s.Ball().Velocity; got != core.V(50, 0) {
		t.Errorf("velocity = %v, want unchanged (50, 0)", got)
	}
	if len(r.Hits) != 1 || r.Hits[0].Flipped {
		t.Errorf("hits = %+v, want one unflipped hit", r.Hits)
	}
}

func TestCornerDoubleReflection(t *testing.T) {
	s, arena := newBallStore(core.V(-440, 290), core.V(-100, 100))

	r := Tick(s, arena, 500, testDT, 0)

	if got := s.Ball().Velocity; got != core.V(100, -100) {
		t.Errorf("velocity = %v, want (100, -100)", got)
	}
	if len(r.Hits) != 2 {
		t.Fatalf("hits = %+v, want left wall then top wall", r.Hits)
	}
	if r.Hits[0].Side != SideRight || r.Hits[1].Side != SideBottom {
		t.Errorf("sides = %s, %s; want right, bottom", r.Hits[0].Side, r.Hits[1].Side)
	}
}

func TestBrickHitDespawns(t *testing.T) {
	s, arena := newBallStore(core.V(0, 50), core.V(0, 100))
	brick := s.Spawn(Entity{Kind: KindBrick, Box: box(0, 70, 100, 30)})

	r := Tick(s, arena, 500, testDT, 0)

	if len(r.Removed) != 1 || r.Removed[0] != brick {
		t.Fatalf("removed = %v, want [%d]", r.Removed, brick)
	}
	if got := s.Ball().Velocity; got != core.V(0, -100) {
		t.Errorf("velocity = %v, want (0, -100)", got)
	}

	// Gone from the store, so never processed again
	r = Tick(s, arena, 500, testDT, 0)
	if len(r.Hits) != 0 || len(r.Removed) != 0 {
		t.Errorf("second tick report = %+v, want empty", r)
	}
}

func TestInsideHitDespawnsBrick(t *testing.T) {
	s, arena := newBallStore(core.V(0, 50), core.V(0, 100))
	// Large enough to contain the ball on both axes after the move
	brick := s.Spawn(Entity{Kind: KindBrick, Box: box(0, 50, 200, 200)})

	r := Tick(s, arena, 500, testDT, 0)

	if len(r.Hits) != 1 || r.Hits[0].Side != SideInside || r.Hits[0].Flipped {
		t.Fatalf("hits = %+v, want one unflipped inside hit", r.Hits)
	}
	if len(r.Removed) != 1 || r.Removed[0] != brick {
		t.Errorf("removed = %v, want [%d]", r.Removed, brick)
	}
	if _, ok := s.Get(brick); ok {
		t.Error("brick still in the store")
	}
	if got := s.Ball().Velocity; got != core.V(0, 100) {
		t.Errorf("velocity = %v, want unchanged (0, 100)", got)
	}
}

func TestIntegrateMovesOnlyKinematic(t *testing.T) {
	s, arena := newBallStore(core.V(0, 0), core.V(60, -120))

	Tick(s, arena, 500, 0.5, 0)
	if got := s.Ball().Box.Center; got != core.V(30, -60) {
		t.Errorf("ball center = %v, want (30, -60)", got)
	}

	// Negative dt is treated as zero
	Tick(s, arena, 500, -1, 1)
	if got := s.Ball().Box.Center; got != core.V(30, -60) {
		t.Errorf("ball moved on negative dt: %v", got)
	}
	if got := s.Paddle().Box.Center.X; got != 0 {
		t.Errorf("paddle moved on negative dt: %v", got)
	}
}

func TestPaddleBounded(t *testing.T) {
	tests := []struct {
		name string
		dir  float64
		want float64
	}{
		{"right", 1, 380},
		{"left", -1, -380},
		{"both keys", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(DefaultParams(), builtinLayouts[0])
			left, right := w.Arena.PaddleBounds(60)

			for range 600 {
				w.Tick(testDT, tt.dir)
				x := w.Store.Paddle().Box.Center.X
				if x < left || x > right {
					t.Fatalf("paddle x %v outside [%v, %v]", x, left, right)
				}
			}
			if got := w.Store.Paddle().Box.Center.X; got != tt.want {
				t.Errorf("paddle x = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpeedInvariance(t *testing.T) {
	w := NewWorld(DefaultParams(), builtinLayouts[0])
	want := w.Store.Ball().Velocity.Len()

	for i := range 20000 {
		w.Tick(testDT, AutopilotDirection(w.Store))
		got := w.Store.Ball().Velocity.Len()
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("tick %d: speed %v, want %v", i, got, want)
		}
	}
}

func TestSingleDestruction(t *testing.T) {
	w := NewWorld(DefaultParams(), builtinLayouts[0])
	removed := make(map[EntityID]bool)

	for range 20000 {
		r := w.Tick(testDT, AutopilotDirection(w.Store))
		for _, id := range r.Removed {
			if removed[id] {
				t.Fatalf("brick %d removed twice", id)
			}
			removed[id] = true
			if _, ok := w.Store.Get(id); ok {
				t.Fatalf("brick %d still in store", id)
			}
		}
	}

	if len(removed) == 0 {
		t.Fatal("no bricks destroyed")
	}
	if got := len(removed) + w.BricksRemaining(); got != w.BricksTotal() {
		t.Errorf("removed + remaining = %d, want %d", got, w.BricksTotal())
	}
}

func TestZeroDeltaIsNoop(t *testing.T) {
	// Overlapping the left wall and moving into it
	s, arena := newBallStore(core.V(-440, 0), core.V(-100, 0))

	r := Tick(s, arena, 500, 0, 1)

	if len(r.Hits) != 0 || len(r.Removed) != 0 {
		t.Errorf("report = %+v, want empty on zero dt", r)
	}
	if got := s.Ball().Velocity; got != core.V(-100, 0) {
		t.Errorf("velocity = %v, want unchanged (-100, 0)", got)
	}
	if got := s.Ball().Box.Center; got != core.V(-440, 0) {
		t.Errorf("ball moved on zero dt: %v", got)
	}
	if got := s.Paddle().Box.Center.X; got != 0 {
		t.Errorf("paddle moved on zero dt: %v", got)
	}
}
