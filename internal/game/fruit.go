package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/basket-fighter/internal/config"
	"github.com/vovakirdan/basket-fighter/internal/core"
)

// FruitKind selects a fruit's motion, sprite and point value.
type FruitKind int

const (
	FruitSlow FruitKind = iota
	FruitFast
	FruitSlide
	FruitCurvy
)

// String returns the kind's name.
func (k FruitKind) String() string {
	switch k {
	case FruitSlow:
		return "slow"
	case FruitFast:
		return "fast"
	case FruitSlide:
		return "slide"
	case FruitCurvy:
		return "curvy"
	default:
		return "unknown"
	}
}

// Points returns the score awarded for catching a fruit of this kind.
func (k FruitKind) Points() int {
	switch k {
	case FruitSlow:
		return 1
	case FruitFast, FruitSlide:
		return 2
	case FruitCurvy:
		return 3
	default:
		return 0
	}
}

// Sprite returns the image drawn for this kind.
func (k FruitKind) Sprite() core.SpriteID {
	switch k {
	case FruitSlow:
		return core.SpriteApple
	case FruitFast:
		return core.SpriteBanana
	case FruitSlide:
		return core.SpriteCherry
	default:
		return core.SpritePear
	}
}

// fruitPhysics holds the motion constants shared by all fruit of one game.
type fruitPhysics struct {
	slowSpeed   float64
	fastSpeed   float64
	slideDrift  float64
	curvyFactor float64
	curvyAmp    float64
	curvyFreq   float64
	wrapMargin  float64
	cullY       float64 // fruit with y beyond this are off-screen
}

func newFruitPhysics(cfg config.BasketConfig) *fruitPhysics {
	bound := float64(cfg.Canvas.Width)
	if cfg.Fruit.CullAgainstHeight {
		bound = float64(cfg.Canvas.Height)
	}
	return &fruitPhysics{
		slowSpeed:   cfg.Fruit.SlowSpeed,
		fastSpeed:   cfg.Fruit.FastSpeed,
		slideDrift:  cfg.Fruit.SlideDrift,
		curvyFactor: cfg.Fruit.CurvySpeedFactor,
		curvyAmp:    cfg.Fruit.CurvyAmplitude,
		curvyFreq:   cfg.Fruit.CurvyFrequency,
		wrapMargin:  cfg.Fruit.WrapMargin,
		cullY:       bound + cfg.Fruit.CullOffset,
	}
}

// Fruit is a falling entity. Dir is used by slide fruit only and Phase by
// curvy fruit only.
type Fruit struct {
	Entity
	Kind  FruitKind
	Dir   int     // +1 or -1, fixed at spawn
	Phase float64 // radians accumulator

	caught  bool
	physics *fruitPhysics
}

func newFruit(c *core.Canvas, kind FruitKind, pos core.Vec, phys *fruitPhysics, rng *rand.Rand) *Fruit {
	f := &Fruit{
		Entity:  newEntity(c, kind.Sprite(), pos, phys.wrapMargin),
		Kind:    kind,
		physics: phys,
	}
	switch kind {
	case FruitSlide:
		f.Dir = rng.Intn(2)*2 - 1
	case FruitCurvy:
		f.Phase = float64(rng.Intn(360)) * 2 * math.Pi / 360
	}
	return f
}

// Caught reports whether the basket took this fruit.
func (f *Fruit) Caught() bool {
	return f.caught
}

// Update advances the fruit by one tick and flags it once it falls past
// the cull bound.
func (f *Fruit) Update() {
	p := f.physics
	switch f.Kind {
	case FruitSlow:
		f.Pos.Y += p.slowSpeed
	case FruitFast:
		f.Pos.Y += p.fastSpeed
	case FruitSlide:
		f.Pos.Y += p.fastSpeed
		f.Pos.X += float64(f.Dir) * p.slideDrift
	case FruitCurvy:
		f.Pos.Y += p.slowSpeed * p.curvyFactor
		f.Phase++
		f.Pos.X += math.Sin(f.Phase*p.curvyFreq) * p.curvyAmp
	}

	if f.Pos.Y > p.cullY {
		f.deleted = true
	}
}

// catch flags the fruit as taken by the basket. It returns false if the
// fruit was already flagged for any reason.
func (f *Fruit) catch() bool {
	if f.deleted {
		return false
	}
	f.deleted = true
	f.caught = true
	return true
}
