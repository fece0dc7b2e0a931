package config

import (
	_ "embed"
)

//go:embed defaults/basket.yaml
var defaultBasketYAML []byte

// DefaultBasketConfig returns the built-in configuration. It mirrors
// defaults/basket.yaml and is used if the embedded file cannot be parsed.
func DefaultBasketConfig() BasketConfig {
	return BasketConfig{
		Canvas: CanvasConfig{
			Width:  600,
			Height: 500,
			Title:  "Basket Fighter",
		},
		Timing: TimingConfig{
			UpdateDelayMS: 33,
		},
		Fruit: FruitConfig{
			SlowSpeed:        3,
			FastSpeed:        6,
			SlideDrift:       5,
			CurvySpeedFactor: 1.2,
			CurvyAmplitude:   10,
			CurvyFrequency:   0.08,
			WrapMargin:       20,
			CullOffset:       30,
		},
		Basket: BasketPlayer{
			Speed:         10,
			Margin:        30,
			WrapMargin:    25,
			CatchDistance: 40,
			BottomOffset:  50,
		},
		Spawn: SpawnConfig{
			Chance:     0.05,
			EdgeMargin: 50,
			Weights: SpawnWeights{
				Slow:  30,
				Fast:  30,
				Slide: 20,
				Curvy: 20,
			},
		},
		HUD: HUDConfig{
			ScoreX: 100,
			ScoreY: 40,
		},
		Keys: KeyConfig{
			Left:  []string{"a", "left"},
			Right: []string{"d", "right"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBasketYAML
}
