package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/basket-fighter/internal/core"
	"github.com/vovakirdan/basket-fighter/internal/game"
)

// Model is the Bubble Tea model for a Basket Fighter session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	raster     Rasterizer
	theme      Theme
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model for g and starts a new game on it.
// A zero seed is replaced by a time-based one.
func NewModel(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger, width, height int) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bc := g.Config()
	theme := DefaultTheme()
	h := help.New()
	h.Width = width

	m := Model{
		game:       g,
		screen:     core.NewScreen(width, core.Max(height-1, 0)),
		raster:     NewRasterizer(theme, bc.Canvas.Width, bc.Canvas.Height),
		theme:      theme,
		keys:       NewKeyMap(bc.Keys),
		help:       h,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		width:      width,
		height:     height,
	}
	g.Reset(cfg)
	m.gameState = g.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed, "tps", m.config.TPS())
	return tickCmd(m.config.UpdateDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers movement commands until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "score", m.gameState.Score, "ticks", m.gameState.Tick)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.inputFrame.Command(action)
	}
	return m, nil
}

// handleResize adapts the cell grid. The game keeps running; only the
// projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logger.Debug(ev.Kind.String(), append(ev.KeyVals(), "score", result.State.Score)...)
	}
	if result.Err != nil {
		m.logger.Warn("canvas update failed", "error", result.Err)
	}

	return m, tickCmd(m.config.UpdateDelay)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < MinWidth || m.height < MinHeight {
		return m.theme.Warning.Render(
			fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", MinWidth, MinHeight, m.width, m.height),
		)
	}

	m.raster.Draw(m.screen, m.game.Canvas())
	m.screen.DrawTextCentered(0, " "+m.game.Title()+" ", m.theme.Label)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for g and blocks until the player quits.
func Run(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger, width, height int) error {
	model := NewModel(g, cfg, logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
