package game

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/basket-fighter/internal/config"
	"github.com/vovakirdan/basket-fighter/internal/core"
)

const eps = 1e-9

// quietConfig returns the default tuning with spawning disabled, so tests
// control every fruit on the canvas.
func quietConfig() config.BasketConfig {
	cfg := config.DefaultBasketConfig()
	cfg.Spawn.Chance = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.BasketConfig) *Game {
	t.Helper()
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 42})
	return g
}

func step(g *Game) core.StepResult {
	return g.Step(core.NewInputFrame())
}

func TestResetPlacesBasket(t *testing.T) {
	g := newTestGame(t, quietConfig())

	if g.Basket().Pos != core.NewVec(300, 450) {
		t.Errorf("Basket start = %v, expected (300, 450)", g.Basket().Pos)
	}
	if g.Basket().Direction != DirNone {
		t.Errorf("Basket direction = %v, expected none", g.Basket().Direction)
	}
	if g.Score() != 0 || len(g.Fruits()) != 0 {
		t.Errorf("Fresh game should have score 0 and no fruit, got %d and %d", g.Score(), len(g.Fruits()))
	}

	// basket + score label
	if g.Canvas().Len() != 2 {
		t.Errorf("Canvas items = %d, expected 2", g.Canvas().Len())
	}
	it, ok := g.Canvas().Get(g.scoreText)
	if !ok || it.Text != "Score: 0" || it.Pos != core.NewVec(100, 40) {
		t.Errorf("Score label = %+v, expected %q at (100, 40)", it, "Score: 0")
	}
}

func TestFruitVerticalSpeed(t *testing.T) {
	tests := []struct {
		kind FruitKind
		dy   float64
	}{
		{FruitSlow, 3},
		{FruitFast, 6},
		{FruitSlide, 6},
		{FruitCurvy, 3.6},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			g := newTestGame(t, quietConfig())
			g.Basket().Pos.X = 50 // keep the basket out of the way
			f := g.addFruit(tc.kind, core.NewVec(300, 0))

			for i := 0; i < 50; i++ {
				before := f.Pos.Y
				step(g)
				if d := f.Pos.Y - before; math.Abs(d-tc.dy) > eps {
					t.Fatalf("tick %d: dy = %v, expected %v", i, d, tc.dy)
				}
			}
		})
	}
}

func TestSlideFruitDrift(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.Basket().Pos.X = 50

	for i := 0; i < 20; i++ {
		f := g.addFruit(FruitSlide, core.NewVec(300, 0))
		if f.Dir != 1 && f.Dir != -1 {
			t.Fatalf("Slide direction = %d, expected +1 or -1", f.Dir)
		}
	}

	f := g.Fruits()[0]
	dir := f.Dir
	for i := 0; i < 30; i++ {
		before := f.Pos.X
		step(g)
		if d := f.Pos.X - before; d != 5*float64(dir) {
			t.Fatalf("tick %d: dx = %v, expected %v", i, d, 5*float64(dir))
		}
		if f.Dir != dir {
			t.Fatalf("Slide direction changed from %d to %d", dir, f.Dir)
		}
	}
}

func TestCurvyFruitOscillation(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.Basket().Pos.X = 50

	for i := 0; i < 200; i++ {
		f := g.addFruit(FruitCurvy, core.NewVec(300, 0))
		if f.Phase < 0 || f.Phase >= 2*math.Pi {
			t.Fatalf("Initial phase = %v, expected within [0, 2π)", f.Phase)
		}
	}

	g = newTestGame(t, quietConfig())
	g.Basket().Pos.X = 50
	f := g.addFruit(FruitCurvy, core.NewVec(300, 0))
	f.Phase = 1.25

	for i := 0; i < 40; i++ {
		before := f.Pos.X
		phase := f.Phase
		step(g)

		if f.Phase != phase+1 {
			t.Fatalf("tick %d: phase = %v, expected %v", i, f.Phase, phase+1)
		}
		expected := 10 * math.Sin(0.08*f.Phase)
		if d := f.Pos.X - before; math.Abs(d-expected) > eps {
			t.Fatalf("tick %d: dx = %v, expected %v", i, d, expected)
		}
	}
}

func TestFruitWrap(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"left of margin", 10, 580},
		{"right of margin", 590, 20},
		{"at left margin", 20, 20},
		{"at right margin", 580, 580},
		{"inside", 300, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, quietConfig())
			f := g.addFruit(FruitSlow, core.NewVec(tc.x, 0))
			f.Wrap()
			if f.Pos.X != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.x, f.Pos.X, tc.expected)
			}
		})
	}
}

func TestBasketWrapMargin(t *testing.T) {
	g := newTestGame(t, quietConfig())
	b := g.Basket()

	b.Pos.X = 24
	b.Wrap()
	if b.Pos.X != 575 {
		t.Errorf("Basket at 24 wrapped to %v, expected 575", b.Pos.X)
	}

	b.Pos.X = 576
	b.Wrap()
	if b.Pos.X != 25 {
		t.Errorf("Basket at 576 wrapped to %v, expected 25", b.Pos.X)
	}
}

func TestBasketDirectionIsSticky(t *testing.T) {
	g := newTestGame(t, quietConfig())
	in := core.NewInputFrame()
	in.Command(core.ActionLeft)
	g.Step(in)

	if g.Basket().Pos.X != 290 {
		t.Fatalf("Basket x after one left tick = %v, expected 290", g.Basket().Pos.X)
	}

	// No further input: keeps moving left
	for i := 0; i < 26; i++ {
		step(g)
	}
	if g.Basket().Pos.X != 30 {
		t.Fatalf("Basket x after 27 left ticks = %v, expected 30", g.Basket().Pos.X)
	}

	// 30 >= margin, so it moves to 20 and then wraps past the 25 px margin
	step(g)
	if g.Basket().Pos.X != 575 {
		t.Errorf("Basket x after crossing the left edge = %v, expected 575", g.Basket().Pos.X)
	}
	if g.Basket().Direction != DirLeft {
		t.Errorf("Direction = %v, expected left to persist", g.Basket().Direction)
	}
}

func TestBasketRightBound(t *testing.T) {
	g := newTestGame(t, quietConfig())
	b := g.Basket()
	b.Pos.X = 570
	b.SetDirection(DirRight)

	step(g)
	// 570 <= 600-30, so it moves to 580, which is past the 25 px wrap margin
	if b.Pos.X != 25 {
		t.Errorf("Basket x = %v, expected wrap to 25", b.Pos.X)
	}

	b.Pos.X = 571
	b.Update()
	if b.Pos.X != 571 {
		t.Errorf("Basket beyond the right bound should not move, got %v", b.Pos.X)
	}
}

func TestLastCommandWins(t *testing.T) {
	g := newTestGame(t, quietConfig())
	in := core.NewInputFrame()
	in.Command(core.ActionLeft)
	in.Command(core.ActionRight)
	g.Step(in)

	if g.Basket().Direction != DirRight {
		t.Errorf("Direction = %v, expected right", g.Basket().Direction)
	}
}

func TestCatchFastFruit(t *testing.T) {
	g := newTestGame(t, quietConfig())
	f := g.addFruit(FruitFast, core.NewVec(300, 440))
	handle := f.Handle()

	res := step(g)

	if res.State.Score != 2 {
		t.Errorf("Score = %d, expected 2", res.State.Score)
	}
	if len(g.Fruits()) != 0 {
		t.Errorf("Caught fruit should be removed, %d left", len(g.Fruits()))
	}
	if _, ok := g.Canvas().Get(handle); ok {
		t.Error("Caught fruit's sprite should be released")
	}
	if it, _ := g.Canvas().Get(g.scoreText); it.Text != "Score: 2" {
		t.Errorf("Score label = %q, expected %q", it.Text, "Score: 2")
	}

	if len(res.Events) != 1 || res.Events[0].Kind != core.EventCatch || res.Events[0].Points != 2 {
		t.Errorf("Events = %+v, expected one catch worth 2", res.Events)
	}
	if res.Err != nil {
		t.Errorf("Step() error = %v", res.Err)
	}
}

func TestCatchPointsPerKind(t *testing.T) {
	tests := []struct {
		kind   FruitKind
		points int
	}{
		{FruitSlow, 1},
		{FruitFast, 2},
		{FruitSlide, 2},
		{FruitCurvy, 3},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			g := newTestGame(t, quietConfig())
			g.addFruit(tc.kind, core.NewVec(300, 445))

			res := step(g)
			if res.State.Score != tc.points {
				t.Errorf("Score = %d, expected %d", res.State.Score, tc.points)
			}
		})
	}
}

func TestFruitScoresOnce(t *testing.T) {
	g := newTestGame(t, quietConfig())
	f := g.addFruit(FruitSlow, core.NewVec(300, 445))

	caught := g.basket.CheckCollisions(g.fruits)
	again := g.basket.CheckCollisions(g.fruits)

	if len(caught) != 1 || caught[0] != f {
		t.Fatalf("First check caught %d fruit, expected 1", len(caught))
	}
	if len(again) != 0 {
		t.Errorf("Second check caught %d fruit, expected 0", len(again))
	}

	if err := f.Delete(g.Canvas()); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := f.Delete(g.Canvas()); !errors.Is(err, core.ErrUnknownHandle) {
		t.Errorf("Second Delete() = %v, expected ErrUnknownHandle", err)
	}
}

func TestCulledFruitIsNotCaught(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.Basket().Pos = core.NewVec(300, 633)
	g.addFruit(FruitSlow, core.NewVec(300, 629))

	res := step(g)

	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected 0 for a fruit culled this tick", res.State.Score)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventCull {
		t.Errorf("Events = %+v, expected one cull", res.Events)
	}
	if len(g.Fruits()) != 0 {
		t.Errorf("Culled fruit should be removed, %d left", len(g.Fruits()))
	}
}

func TestUncaughtFruitIsCulledPastWidth(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.Basket().Pos.X = 100 // never under the fruit
	f := g.addFruit(FruitSlow, core.NewVec(300, 0))

	ticks := 0
	for len(g.Fruits()) > 0 {
		y := f.Pos.Y
		step(g)
		ticks++

		if f.Pos.Y > 500 && f.Pos.Y <= 630 && len(g.Fruits()) == 0 {
			t.Fatalf("Fruit removed at y=%v, expected it to live until y > 630", f.Pos.Y)
		}
		if f.Pos.Y < y {
			t.Fatalf("Fruit moved up from %v to %v", y, f.Pos.Y)
		}
		if ticks > 1000 {
			t.Fatal("Fruit never removed")
		}
	}

	if f.Pos.Y <= 630 {
		t.Errorf("Fruit removed at y=%v, expected y > 630", f.Pos.Y)
	}
	if ticks != 211 {
		t.Errorf("Removed after %d ticks, expected 211", ticks)
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, expected 0", g.Score())
	}
	// basket + score label remain
	if g.Canvas().Len() != 2 {
		t.Errorf("Canvas items = %d, expected 2", g.Canvas().Len())
	}
}

func TestCullAgainstHeight(t *testing.T) {
	cfg := quietConfig()
	cfg.Fruit.CullAgainstHeight = true
	g := newTestGame(t, cfg)
	g.Basket().Pos.X = 100
	f := g.addFruit(FruitFast, core.NewVec(300, 0))

	for len(g.Fruits()) > 0 {
		step(g)
	}
	if f.Pos.Y <= 530 || f.Pos.Y > 536 {
		t.Errorf("Fruit removed at y=%v, expected first tick past 530", f.Pos.Y)
	}
}

func TestSpawnEvent(t *testing.T) {
	cfg := config.DefaultBasketConfig()
	cfg.Spawn.Chance = 1
	g := newTestGame(t, cfg)

	res := step(g)

	if len(g.Fruits()) != 1 {
		t.Fatalf("Fruits = %d, expected 1", len(g.Fruits()))
	}
	f := g.Fruits()[0]
	if f.Pos.Y != 0 || f.Pos.X < 50 || f.Pos.X > 550 {
		t.Errorf("Spawn position = %v, expected y=0 and x within [50, 550]", f.Pos)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventSpawn {
		t.Errorf("Events = %+v, expected one spawn", res.Events)
	}
	if it, ok := g.Canvas().Get(f.Handle()); !ok || it.Sprite != f.Kind.Sprite() {
		t.Errorf("Spawned fruit sprite = %+v, expected %q", it, f.Kind.Sprite())
	}
}

func TestResetLeavesEarlierFruitSliceIntact(t *testing.T) {
	cfg := config.DefaultBasketConfig()
	cfg.Spawn.Chance = 1
	g := newTestGame(t, cfg)
	for i := 0; i < 3; i++ {
		step(g)
	}

	before := g.Fruits()
	saved := append([]*Fruit(nil), before...)

	g.Reset(core.RuntimeConfig{Seed: 7})
	if len(g.Fruits()) != 0 {
		t.Fatalf("Fruits after Reset = %d, expected 0", len(g.Fruits()))
	}
	for i := 0; i < 3; i++ {
		step(g)
	}

	for i := range saved {
		if before[i] != saved[i] {
			t.Errorf("Fruit %d of the earlier slice was overwritten by the new game", i)
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	cfg := config.DefaultBasketConfig()
	cfg.Spawn.Chance = 0.2
	g := newTestGame(t, cfg)

	in := core.NewInputFrame()
	last := 0
	catches := 0
	for i := 0; i < 5000; i++ {
		in.Clear()
		switch (i / 40) % 3 {
		case 0:
			in.Command(core.ActionLeft)
		case 1:
			in.Command(core.ActionRight)
		}

		res := g.Step(in)
		if res.State.Score < last {
			t.Fatalf("tick %d: score dropped from %d to %d", i, last, res.State.Score)
		}

		gained := 0
		for _, ev := range res.Events {
			if ev.Kind != core.EventCatch {
				continue
			}
			catches++
			if ev.Points < 1 || ev.Points > 3 {
				t.Fatalf("tick %d: catch worth %d, expected 1..3", i, ev.Points)
			}
			gained += ev.Points
		}
		if res.State.Score-last != gained {
			t.Fatalf("tick %d: score moved by %d, events account for %d", i, res.State.Score-last, gained)
		}
		last = res.State.Score
	}

	if catches == 0 {
		t.Error("Expected at least one catch over 5000 ticks")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultBasketConfig()
	rc := core.RuntimeConfig{Seed: 12345}

	g1 := New(cfg)
	g1.Reset(rc)
	g2 := New(cfg)
	g2.Reset(rc)

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		in.Clear()
		if i%50 == 0 {
			in.Command(core.ActionLeft)
		}
		if i%70 == 0 {
			in.Command(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Score != s2.Score {
		t.Errorf("Tick/score mismatch: %d/%d vs %d/%d", s1.Tick, s1.Score, s2.Tick, s2.Score)
	}
	if s1.BasketX != s2.BasketX || s1.Direction != s2.Direction {
		t.Errorf("Basket mismatch: %v %v vs %v %v", s1.BasketX, s1.Direction, s2.BasketX, s2.Direction)
	}
	if len(s1.Fruits) != len(s2.Fruits) {
		t.Fatalf("Fruit count mismatch: %d vs %d", len(s1.Fruits), len(s2.Fruits))
	}
	for i := range s1.Fruits {
		if s1.Fruits[i] != s2.Fruits[i] {
			t.Errorf("Fruit %d mismatch: %+v vs %+v", i, s1.Fruits[i], s2.Fruits[i])
		}
	}
}

func TestCanvasTracksLiveFruit(t *testing.T) {
	cfg := config.DefaultBasketConfig()
	cfg.Spawn.Chance = 0.3
	g := newTestGame(t, cfg)

	for i := 0; i < 1000; i++ {
		res := step(g)
		if res.Err != nil {
			t.Fatalf("tick %d: %v", i, res.Err)
		}
		// basket + label + one sprite per live fruit
		if want := 2 + len(g.Fruits()); g.Canvas().Len() != want {
			t.Fatalf("tick %d: canvas items = %d, expected %d", i, g.Canvas().Len(), want)
		}
	}
}
