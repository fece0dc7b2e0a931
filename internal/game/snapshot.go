package game

// FruitSnapshot captures one live fruit.
type FruitSnapshot struct {
	Kind FruitKind
	X, Y float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	BasketX   float64
	BasketY   float64
	Direction Direction
	Fruits    []FruitSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Score:  g.score,
		Fruits: make([]FruitSnapshot, 0, len(g.fruits)),
	}
	if g.basket != nil {
		s.BasketX = g.basket.Pos.X
		s.BasketY = g.basket.Pos.Y
		s.Direction = g.basket.Direction
	}
	for _, f := range g.fruits {
		s.Fruits = append(s.Fruits, FruitSnapshot{Kind: f.Kind, X: f.Pos.X, Y: f.Pos.Y})
	}
	return s
}
