// Package config provides YAML-based tuning for Basket Fighter: canvas
// size, tick interval, entity speeds, spawn odds and key bindings.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/basket-fighter/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// BasketConfig contains all configuration for the game.
type BasketConfig struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Timing TimingConfig `yaml:"timing"`
	Fruit  FruitConfig  `yaml:"fruit"`
	Basket BasketPlayer `yaml:"basket"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	HUD    HUDConfig    `yaml:"hud"`
	Keys   KeyConfig    `yaml:"keys"`
}

// CanvasConfig defines the fixed display surface.
type CanvasConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TimingConfig defines the tick source.
type TimingConfig struct {
	UpdateDelayMS int `yaml:"update_delay_ms"`
}

// FruitConfig defines falling fruit motion.
type FruitConfig struct {
	SlowSpeed        float64 `yaml:"slow_speed"`
	FastSpeed        float64 `yaml:"fast_speed"`
	SlideDrift       float64 `yaml:"slide_drift"`        // horizontal px per tick for slide fruit
	CurvySpeedFactor float64 `yaml:"curvy_speed_factor"` // curvy vertical speed = slow_speed * factor
	CurvyAmplitude   float64 `yaml:"curvy_amplitude"`
	CurvyFrequency   float64 `yaml:"curvy_frequency"` // scale applied to the phase before sin
	WrapMargin       float64 `yaml:"wrap_margin"`
	CullOffset       float64 `yaml:"cull_offset"`
	// CullAgainstHeight compares fruit y with the canvas height instead of
	// the width when deciding a fruit fell off-screen.
	CullAgainstHeight bool `yaml:"cull_against_height"`
}

// BasketPlayer defines the player's basket.
type BasketPlayer struct {
	Speed         float64 `yaml:"speed"`
	Margin        float64 `yaml:"margin"` // movement bound from each edge
	WrapMargin    float64 `yaml:"wrap_margin"`
	CatchDistance float64 `yaml:"catch_distance"`
	BottomOffset  float64 `yaml:"bottom_offset"` // basket y = height - bottom_offset
}

// SpawnConfig defines how often and which fruit appear.
type SpawnConfig struct {
	Chance     float64      `yaml:"chance"`      // per-tick probability
	EdgeMargin int          `yaml:"edge_margin"` // spawn x in [edge_margin, width-edge_margin]
	Weights    SpawnWeights `yaml:"weights"`
}

// SpawnWeights are relative odds for each fruit kind.
type SpawnWeights struct {
	Slow  float64 `yaml:"slow"`
	Fast  float64 `yaml:"fast"`
	Slide float64 `yaml:"slide"`
	Curvy float64 `yaml:"curvy"`
}

// Thresholds returns cumulative upper bounds for a uniform draw in [0, 1):
// a draw p <= t[0] is slow, <= t[1] fast, <= t[2] slide, otherwise curvy.
func (w SpawnWeights) Thresholds() [3]float64 {
	total := w.Slow + w.Fast + w.Slide + w.Curvy
	if total <= 0 {
		return [3]float64{}
	}
	return [3]float64{
		w.Slow / total,
		(w.Slow + w.Fast) / total,
		(w.Slow + w.Fast + w.Slide) / total,
	}
}

// HUDConfig positions the score label.
type HUDConfig struct {
	ScoreX float64 `yaml:"score_x"`
	ScoreY float64 `yaml:"score_y"`
}

// KeyConfig binds key names to basket commands. Names are matched
// case-insensitively.
type KeyConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// Action resolves a key name reported by a frontend to a basket command.
// Names are compared without case, and an "arrow" prefix is ignored so that
// "ArrowLeft" matches "left".
func (k KeyConfig) Action(name string) core.Action {
	name = normalizeKey(name)
	for _, n := range k.Left {
		if normalizeKey(n) == name {
			return core.ActionLeft
		}
	}
	for _, n := range k.Right {
		if normalizeKey(n) == name {
			return core.ActionRight
		}
	}
	return core.ActionNone
}

func normalizeKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimPrefix(name, "arrow")
}

// UpdateDelay returns the tick interval.
func (c BasketConfig) UpdateDelay() time.Duration {
	return time.Duration(c.Timing.UpdateDelayMS) * time.Millisecond
}

// Runtime builds the RuntimeConfig handed to the game.
func (c BasketConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:        seed,
		UpdateDelay: c.UpdateDelay(),
	}
}

// Validate reports the first value the game cannot run with.
func (c BasketConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Timing.UpdateDelayMS <= 0:
		return fmt.Errorf("%w: timing.update_delay_ms must be positive, got %d", ErrInvalid, c.Timing.UpdateDelayMS)
	case c.Fruit.SlowSpeed <= 0 || c.Fruit.FastSpeed <= 0:
		return fmt.Errorf("%w: fruit speeds must be positive", ErrInvalid)
	case c.Fruit.CurvySpeedFactor <= 0:
		return fmt.Errorf("%w: fruit.curvy_speed_factor must be positive", ErrInvalid)
	case c.Basket.Speed <= 0:
		return fmt.Errorf("%w: basket.speed must be positive", ErrInvalid)
	case c.Basket.CatchDistance < 0:
		return fmt.Errorf("%w: basket.catch_distance must not be negative", ErrInvalid)
	case math.IsNaN(c.Spawn.Chance) || c.Spawn.Chance < 0 || c.Spawn.Chance > 1:
		return fmt.Errorf("%w: spawn.chance must be within [0, 1], got %v", ErrInvalid, c.Spawn.Chance)
	case c.Spawn.EdgeMargin < 0 || 2*c.Spawn.EdgeMargin > c.Canvas.Width:
		return fmt.Errorf("%w: spawn.edge_margin %d does not fit canvas width %d", ErrInvalid, c.Spawn.EdgeMargin, c.Canvas.Width)
	}

	w := c.Spawn.Weights
	if w.Slow < 0 || w.Fast < 0 || w.Slide < 0 || w.Curvy < 0 {
		return fmt.Errorf("%w: spawn weights must not be negative", ErrInvalid)
	}
	if w.Slow+w.Fast+w.Slide+w.Curvy <= 0 {
		return fmt.Errorf("%w: spawn weights must not all be zero", ErrInvalid)
	}

	if !hasKey(c.Keys.Left) || !hasKey(c.Keys.Right) {
		return fmt.Errorf("%w: keys.left and keys.right need at least one key each", ErrInvalid)
	}
	return nil
}

func hasKey(keys []string) bool {
	for _, k := range keys {
		if strings.TrimSpace(k) != "" {
			return true
		}
	}
	return false
}
