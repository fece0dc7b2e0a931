package core

import (
	"errors"
	"testing"
)

func TestCanvasCreateOrder(t *testing.T) {
	c := NewCanvas(600, 500)

	a := c.CreateSprite(SpriteApple, NewVec(10, 0))
	b := c.CreateText("Score: 0", NewVec(100, 40))
	p := c.CreateSprite(SpritePear, NewVec(20, 0))

	if a == 0 || b == 0 || p == 0 {
		t.Fatal("Zero handle must never be issued")
	}
	if a == b || b == p || a == p {
		t.Fatalf("Handles must be unique, got %d %d %d", a, b, p)
	}

	items := c.Items()
	if len(items) != 3 {
		t.Fatalf("Items() length = %d, expected 3", len(items))
	}
	if items[0].Handle != a || items[1].Handle != b || items[2].Handle != p {
		t.Errorf("Items() should be in creation order, got %d %d %d",
			items[0].Handle, items[1].Handle, items[2].Handle)
	}
	if !items[1].IsText() || items[0].IsText() {
		t.Error("IsText() should distinguish labels from sprites")
	}
}

func TestCanvasMoveAndSetText(t *testing.T) {
	c := NewCanvas(600, 500)
	h := c.CreateSprite(SpriteBasket, NewVec(300, 450))
	txt := c.CreateText("Score: 0", NewVec(100, 40))

	if err := c.Move(h, NewVec(290, 450)); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if it, _ := c.Get(h); it.Pos != NewVec(290, 450) {
		t.Errorf("Pos after Move = %v, expected (290, 450)", it.Pos)
	}

	if err := c.SetText(txt, "Score: 3"); err != nil {
		t.Fatalf("SetText() failed: %v", err)
	}
	if it, _ := c.Get(txt); it.Text != "Score: 3" {
		t.Errorf("Text after SetText = %q, expected %q", it.Text, "Score: 3")
	}
}

func TestCanvasReleaseOnce(t *testing.T) {
	c := NewCanvas(600, 500)
	first := c.CreateSprite(SpriteCherry, NewVec(1, 1))
	second := c.CreateSprite(SpriteBanana, NewVec(2, 2))

	if err := c.Release(first); err != nil {
		t.Fatalf("First Release() failed: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() after release = %d, expected 1", c.Len())
	}
	if _, ok := c.Get(first); ok {
		t.Error("Released item should not be retrievable")
	}

	err := c.Release(first)
	if !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Second Release() error = %v, expected ErrUnknownHandle", err)
	}
	if err := c.Move(first, NewVec(0, 0)); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Move() on released handle error = %v, expected ErrUnknownHandle", err)
	}

	items := c.Items()
	if len(items) != 1 || items[0].Handle != second {
		t.Errorf("Remaining items = %+v, expected only handle %d", items, second)
	}
}

func TestCanvasReset(t *testing.T) {
	c := NewCanvas(600, 500)
	old := c.CreateSprite(SpriteApple, NewVec(0, 0))
	c.Reset()

	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", c.Len())
	}
	if h := c.CreateSprite(SpriteApple, NewVec(0, 0)); h == old {
		t.Error("Handles must not be reused after Reset")
	}
}
