package game

import (
	"github.com/vovakirdan/basket-fighter/internal/config"
	"github.com/vovakirdan/basket-fighter/internal/core"
)

// Direction is the basket's current movement command.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Basket is the player's entity. It is created once per game and never
// deleted.
type Basket struct {
	Entity
	Direction Direction

	speed         float64
	margin        float64
	catchDistance float64
}

func newBasket(c *core.Canvas, cfg config.BasketPlayer, pos core.Vec) *Basket {
	return &Basket{
		Entity:        newEntity(c, core.SpriteBasket, pos, cfg.WrapMargin),
		speed:         cfg.Speed,
		margin:        cfg.Margin,
		catchDistance: cfg.CatchDistance,
	}
}

// SetDirection changes the movement command. It stays in effect until the
// next command.
func (b *Basket) SetDirection(d Direction) {
	b.Direction = d
}

// Update moves the basket one step in its current direction while it is
// inside the movement bounds.
func (b *Basket) Update() {
	switch b.Direction {
	case DirLeft:
		if b.Pos.X >= b.margin {
			b.Pos.X -= b.speed
		}
	case DirRight:
		if b.Pos.X <= b.canvasW-b.margin {
			b.Pos.X += b.speed
		}
	}
}

// CheckCollisions flags every live fruit within catch distance and returns
// them in collection order. Fruit already flagged, caught or culled, are
// skipped so no fruit scores twice.
func (b *Basket) CheckCollisions(fruits []*Fruit) []*Fruit {
	var caught []*Fruit
	for _, f := range fruits {
		if f.Deleted() {
			continue
		}
		if b.DistanceTo(&f.Entity) <= b.catchDistance && f.catch() {
			caught = append(caught, f)
		}
	}
	return caught
}
