package core

import (
	"errors"
	"fmt"
)

// ErrUnknownHandle is returned when a canvas item is addressed after release
// or was never created.
var ErrUnknownHandle = errors.New("canvas: unknown handle")

// SpriteID names a drawable image. Frontends resolve it to a glyph or a bitmap.
type SpriteID string

// Sprites known to the game.
const (
	SpriteApple  SpriteID = "apple"
	SpriteBanana SpriteID = "banana"
	SpriteCherry SpriteID = "cherry"
	SpritePear   SpriteID = "pear"
	SpriteBasket SpriteID = "basket"
)

// AllSprites lists every sprite in a stable order.
func AllSprites() []SpriteID {
	return []SpriteID{SpriteApple, SpriteBanana, SpriteCherry, SpritePear, SpriteBasket}
}

// Handle identifies one item on a Canvas. The zero Handle is never issued.
type Handle uint64

// Item is a sprite placement or a text label on the canvas.
// Pos is the item's center for sprites and the anchor for text.
type Item struct {
	Handle Handle
	Sprite SpriteID // empty for text items
	Text   string
	Pos    Vec
}

// IsText reports whether the item is a text label.
func (it Item) IsText() bool {
	return it.Sprite == ""
}

// Canvas is the retained display list of a game: the simulation creates,
// moves and releases items, and frontends draw whatever is live.
// Items are kept in creation order, which is also the drawing order.
type Canvas struct {
	width  int
	height int
	next   Handle
	items  map[Handle]*Item
	order  []Handle
}

// NewCanvas creates an empty canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		items:  make(map[Handle]*Item),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// CreateSprite places a sprite centered at pos and returns its handle.
func (c *Canvas) CreateSprite(sprite SpriteID, pos Vec) Handle {
	return c.add(Item{Sprite: sprite, Pos: pos})
}

// CreateText places a text label anchored at pos and returns its handle.
func (c *Canvas) CreateText(text string, pos Vec) Handle {
	return c.add(Item{Text: text, Pos: pos})
}

func (c *Canvas) add(it Item) Handle {
	c.next++
	it.Handle = c.next
	c.items[it.Handle] = &it
	c.order = append(c.order, it.Handle)
	return it.Handle
}

// Move repositions a live item.
func (c *Canvas) Move(h Handle, pos Vec) error {
	it, ok := c.items[h]
	if !ok {
		return fmt.Errorf("move %d: %w", h, ErrUnknownHandle)
	}
	it.Pos = pos
	return nil
}

// SetText replaces the text of a live text item.
func (c *Canvas) SetText(h Handle, text string) error {
	it, ok := c.items[h]
	if !ok {
		return fmt.Errorf("set text %d: %w", h, ErrUnknownHandle)
	}
	it.Text = text
	return nil
}

// Release removes an item from the canvas. Each handle can be released once.
func (c *Canvas) Release(h Handle) error {
	if _, ok := c.items[h]; !ok {
		return fmt.Errorf("release %d: %w", h, ErrUnknownHandle)
	}
	delete(c.items, h)

	kept := c.order[:0]
	for _, id := range c.order {
		if id != h {
			kept = append(kept, id)
		}
	}
	c.order = kept
	return nil
}

// Get returns a copy of a live item.
func (c *Canvas) Get(h Handle) (Item, bool) {
	it, ok := c.items[h]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Len returns the number of live items.
func (c *Canvas) Len() int {
	return len(c.order)
}

// Items returns copies of all live items in drawing order.
func (c *Canvas) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, h := range c.order {
		out = append(out, *c.items[h])
	}
	return out
}

// Reset releases every item. Handles keep increasing across resets.
func (c *Canvas) Reset() {
	c.items = make(map[Handle]*Item)
	c.order = c.order[:0]
}
