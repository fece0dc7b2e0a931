// Package game implements Basket Fighter: the player steers a basket along
// the bottom of the canvas and catches fruit that fall with four different
// motion patterns. The game never ends; the score only grows.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/basket-fighter/internal/config"
	"github.com/vovakirdan/basket-fighter/internal/core"
)

// Game owns every entity, the score and the canvas they are drawn on.
type Game struct {
	cfg     config.BasketConfig
	canvas  *core.Canvas
	rng     *rand.Rand
	spawner *Spawner
	physics *fruitPhysics

	basket    *Basket
	fruits    []*Fruit
	score     int
	scoreText core.Handle
	tick      uint64

	events []core.Event
	err    error // first canvas failure of the current tick
}

// New creates a game with the given tuning. Reset must be called before Step.
func New(cfg config.BasketConfig) *Game {
	return &Game{
		cfg:    cfg,
		canvas: core.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height),
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.cfg.Canvas.Title == "" {
		return "Basket Fighter"
	}
	return g.cfg.Canvas.Title
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.BasketConfig {
	return g.cfg
}

// Canvas returns the display list frontends draw.
func (g *Game) Canvas() *core.Canvas {
	return g.canvas
}

// Reset starts a new game: one basket centered near the bottom, no fruit,
// score zero.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.canvas.Reset()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.spawner = NewSpawner(g.rng, g.cfg.Spawn, g.cfg.Canvas.Width)
	g.physics = newFruitPhysics(g.cfg)

	start := core.NewVec(
		float64(g.cfg.Canvas.Width/2),
		float64(g.cfg.Canvas.Height)-g.cfg.Basket.BottomOffset,
	)
	g.basket = newBasket(g.canvas, g.cfg.Basket, start)
	g.fruits = nil
	g.score = 0
	g.tick = 0
	g.scoreText = g.canvas.CreateText(scoreLabel(0), core.NewVec(g.cfg.HUD.ScoreX, g.cfg.HUD.ScoreY))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	g.err = nil
	g.tick++

	// 1. Buffered command
	switch {
	case in.Has(core.ActionLeft):
		g.basket.SetDirection(DirLeft)
	case in.Has(core.ActionRight):
		g.basket.SetDirection(DirRight)
	}

	// 2. Motion and rendering
	g.basket.Update()
	g.track(g.basket.Render(g.canvas))
	for _, f := range g.fruits {
		f.Update()
		g.track(f.Render(g.canvas))
	}

	// 3. Screen wrap
	g.basket.Wrap()
	for _, f := range g.fruits {
		f.Wrap()
	}

	// 4. Catches
	g.processCollisions()

	// 5. Spawning
	if kind, x, ok := g.spawner.Next(); ok {
		f := g.addFruit(kind, core.NewVec(float64(x), 0))
		g.emit(core.EventSpawn, f, 0)
	}

	// 6. Removal
	g.fruits = g.removeDeleted(g.fruits)

	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
		Err:    g.err,
	}
}

// processCollisions awards points for every fruit the basket reaches.
func (g *Game) processCollisions() {
	caught := g.basket.CheckCollisions(g.fruits)
	if len(caught) == 0 {
		return
	}
	for _, f := range caught {
		points := f.Kind.Points()
		g.score += points
		g.emit(core.EventCatch, f, points)
	}
	g.updateScore()
}

// updateScore refreshes the score label.
func (g *Game) updateScore() {
	g.track(g.canvas.SetText(g.scoreText, scoreLabel(g.score)))
}

// removeDeleted releases flagged fruit and returns the survivors in order.
// The result is a fresh slice; the input is not modified.
func (g *Game) removeDeleted(fruits []*Fruit) []*Fruit {
	kept := make([]*Fruit, 0, len(fruits))
	for _, f := range fruits {
		if !f.Deleted() {
			kept = append(kept, f)
			continue
		}
		g.track(f.Delete(g.canvas))
		if !f.Caught() {
			g.emit(core.EventCull, f, 0)
		}
	}
	return kept
}

// addFruit spawns a fruit of the given kind at pos.
func (g *Game) addFruit(kind FruitKind, pos core.Vec) *Fruit {
	f := newFruit(g.canvas, kind, pos, g.physics, g.rng)
	g.fruits = append(g.fruits, f)
	return f
}

func (g *Game) emit(kind core.EventKind, f *Fruit, points int) {
	g.events = append(g.events, core.Event{
		Kind:    kind,
		Subject: f.Kind.String(),
		Pos:     f.Pos,
		Points:  points,
	})
}

// track keeps the first canvas error of the tick.
func (g *Game) track(err error) {
	if err != nil && g.err == nil {
		g.err = fmt.Errorf("game: tick %d: %w", g.tick, err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Tick:  g.tick,
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Basket returns the player's basket.
func (g *Game) Basket() *Basket {
	return g.basket
}

// Fruits returns the live fruit in spawn order. The slice must not be modified.
func (g *Game) Fruits() []*Fruit {
	return g.fruits
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
