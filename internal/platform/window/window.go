// Package window runs Basket Fighter in a desktop window with ebiten.
// Each ebiten update is one game tick, so the tick rate is set from the
// configured update delay.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/basket-fighter/internal/assets"
	"github.com/vovakirdan/basket-fighter/internal/config"
	"github.com/vovakirdan/basket-fighter/internal/core"
	"github.com/vovakirdan/basket-fighter/internal/game"
)

// Glyph size of the ebitenutil debug font.
const (
	debugCharW = 6
	debugCharH = 16
)

var background = color.RGBA{225, 238, 250, 255}

// Window adapts a game to ebiten.Game.
type Window struct {
	game    *game.Game
	keys    config.KeyConfig
	sprites map[core.SpriteID]*ebiten.Image
	logger  *log.Logger

	pressed    []ebiten.Key
	inputFrame core.InputFrame
	state      core.GameState
}

// New prepares a window for g. The catalog must hold every sprite.
func New(g *game.Game, cat assets.Catalog, logger *log.Logger) (*Window, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sprites := make(map[core.SpriteID]*ebiten.Image, len(cat))
	for _, id := range core.AllSprites() {
		img, _ := cat.Get(id)
		sprites[id] = ebiten.NewImageFromImage(img)
	}

	return &Window{
		game:       g,
		keys:       g.Config().Keys,
		sprites:    sprites,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}, nil
}

// Update collects the keys pressed since the last frame and steps the game.
func (w *Window) Update() error {
	w.pressed = inpututil.AppendJustPressedKeys(w.pressed[:0])
	for _, k := range w.pressed {
		switch action := w.keys.Action(k.String()); action {
		case core.ActionLeft, core.ActionRight:
			w.inputFrame.Command(action)
		}
	}

	result := w.game.Step(w.inputFrame)
	w.state = result.State
	w.inputFrame.Clear()

	for _, ev := range result.Events {
		w.logger.Debug(ev.Kind.String(), append(ev.KeyVals(), "score", result.State.Score)...)
	}
	if result.Err != nil {
		w.logger.Warn("canvas update failed", "error", result.Err)
	}
	return nil
}

// Draw paints every live canvas item, sprites centered on their position.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, it := range w.game.Canvas().Items() {
		if it.IsText() {
			x := int(it.Pos.X) - len([]rune(it.Text))*debugCharW/2
			y := int(it.Pos.Y) - debugCharH/2
			ebitenutil.DebugPrintAt(screen, it.Text, x, y)
			continue
		}

		img, ok := w.sprites[it.Sprite]
		if !ok {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(it.Pos.X-float64(b.Dx())/2, it.Pos.Y-float64(b.Dy())/2)
		screen.DrawImage(img, op)
	}
}

// Layout keeps the logical screen at the canvas size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := w.game.Canvas()
	return c.Width(), c.Height()
}

// Run opens the window, starts a new game and blocks until the window is
// closed.
func Run(g *game.Game, cat assets.Catalog, rc core.RuntimeConfig, logger *log.Logger) error {
	w, err := New(g, cat, logger)
	if err != nil {
		return err
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.Reset(rc)

	c := g.Canvas()
	ebiten.SetWindowSize(c.Width(), c.Height())
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(rc.TPS())

	w.logger.Info("session started", "seed", rc.Seed, "tps", rc.TPS())
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	w.logger.Info("session ended", "score", w.state.Score, "ticks", w.state.Tick)
	return nil
}
