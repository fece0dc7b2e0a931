package game

import (
	"math/rand"

	"github.com/vovakirdan/basket-fighter/internal/config"
)

// Spawner decides each tick whether a fruit appears, where, and of which kind.
type Spawner struct {
	rng        *rand.Rand
	chance     float64
	thresholds [3]float64
	minX       int
	maxX       int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.SpawnConfig, canvasW int) *Spawner {
	return &Spawner{
		rng:        rng,
		chance:     cfg.Chance,
		thresholds: cfg.Weights.Thresholds(),
		minX:       cfg.EdgeMargin,
		maxX:       canvasW - cfg.EdgeMargin,
	}
}

// KindFor classifies a uniform draw p in [0, 1) against cumulative thresholds.
func KindFor(p float64, thresholds [3]float64) FruitKind {
	switch {
	case p <= thresholds[0]:
		return FruitSlow
	case p <= thresholds[1]:
		return FruitFast
	case p <= thresholds[2]:
		return FruitSlide
	default:
		return FruitCurvy
	}
}

// Draw picks a kind with the configured weights.
func (s *Spawner) Draw() FruitKind {
	return KindFor(s.rng.Float64(), s.thresholds)
}

// Next rolls for a spawn this tick. When ok is true, a fruit of the
// returned kind should enter at x on the top edge.
func (s *Spawner) Next() (kind FruitKind, x int, ok bool) {
	if s.rng.Float64() >= s.chance {
		return 0, 0, false
	}
	kind = s.Draw()
	x = s.minX
	if s.maxX > s.minX {
		x = s.minX + s.rng.Intn(s.maxX-s.minX+1)
	}
	return kind, x, true
}
