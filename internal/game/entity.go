package game

import (
	"github.com/vovakirdan/basket-fighter/internal/core"
)

// Entity is the state shared by the basket and every fruit: a position on
// the canvas, the sprite drawn there, and the flag that schedules removal.
type Entity struct {
	Pos core.Vec

	sprite     core.Handle
	deleted    bool
	wrapMargin float64 // distance from either edge at which the entity wraps
	canvasW    float64
}

func newEntity(c *core.Canvas, sprite core.SpriteID, pos core.Vec, wrapMargin float64) Entity {
	return Entity{
		Pos:        pos,
		sprite:     c.CreateSprite(sprite, pos),
		wrapMargin: wrapMargin,
		canvasW:    float64(c.Width()),
	}
}

// Handle returns the entity's canvas item.
func (e *Entity) Handle() core.Handle {
	return e.sprite
}

// Deleted reports whether the entity is scheduled for removal.
func (e *Entity) Deleted() bool {
	return e.deleted
}

// Render moves the entity's sprite to its current position.
func (e *Entity) Render(c *core.Canvas) error {
	return c.Move(e.sprite, e.Pos)
}

// Delete releases the entity's sprite. Only valid once the entity is
// flagged; the canvas rejects a second release of the same handle.
func (e *Entity) Delete(c *core.Canvas) error {
	return c.Release(e.sprite)
}

// DistanceTo returns the Euclidean distance between the two entities.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Pos.Dist(other.Pos)
}

// OutOfScreenLeft reports whether the entity crossed its left wrap margin.
func (e *Entity) OutOfScreenLeft() bool {
	return e.Pos.X < e.wrapMargin
}

// OutOfScreenRight reports whether the entity crossed its right wrap margin.
func (e *Entity) OutOfScreenRight() bool {
	return e.Pos.X > e.canvasW-e.wrapMargin
}

// ReappearAtRightEdge teleports the entity to its right wrap margin.
func (e *Entity) ReappearAtRightEdge() {
	e.Pos.X = e.canvasW - e.wrapMargin
}

// ReappearAtLeftEdge teleports the entity to its left wrap margin.
func (e *Entity) ReappearAtLeftEdge() {
	e.Pos.X = e.wrapMargin
}

// Wrap applies the horizontal screen-wrap policy.
func (e *Entity) Wrap() {
	if e.OutOfScreenLeft() {
		e.ReappearAtRightEdge()
	}
	if e.OutOfScreenRight() {
		e.ReappearAtLeftEdge()
	}
}
