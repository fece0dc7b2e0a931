package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/basket-fighter/internal/core"
	"github.com/vovakirdan/basket-fighter/internal/game"
)

var (
	flagTicks       int
	flagSwitchEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a display for a fixed number of ticks. The basket
is steered by a script that alternates left and right every
--switch-every ticks, starting with left. A summary is printed at the end.

Use --log-level debug to log every spawn, catch and cull.

Examples:
  basket sim --ticks 5000 --seed 42
  basket sim --ticks 300 --switch-every 30 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSwitchEvery, "switch-every", 60, "Ticks between direction changes (0 = never)")
}

// simSummary counts what happened during a simulation.
type simSummary struct {
	Ticks   int
	Score   int
	Spawns  int
	Catches int
	Culls   int
	Live    int
	Errors  int
}

// scriptedAction returns the command for a tick: left first, then
// alternating every switchEvery ticks.
func scriptedAction(tick, switchEvery int) core.Action {
	if switchEvery <= 0 || (tick/switchEvery)%2 == 0 {
		return core.ActionLeft
	}
	return core.ActionRight
}

// simulate resets g and runs it for ticks steps.
func simulate(g *game.Game, rc core.RuntimeConfig, ticks, switchEvery int, logger *log.Logger) simSummary {
	g.Reset(rc)
	var sum simSummary
	in := core.NewInputFrame()

	for i := 0; i < ticks; i++ {
		in.Clear()
		in.Command(scriptedAction(i, switchEvery))

		result := g.Step(in)
		for _, ev := range result.Events {
			switch ev.Kind {
			case core.EventSpawn:
				sum.Spawns++
			case core.EventCatch:
				sum.Catches++
			case core.EventCull:
				sum.Culls++
			}
			logger.Debug(ev.Kind.String(), append(ev.KeyVals(), "tick", result.State.Tick)...)
		}
		if result.Err != nil {
			sum.Errors++
			logger.Warn("canvas update failed", "error", result.Err)
		}
	}

	sum.Ticks = ticks
	sum.Score = g.Score()
	sum.Live = len(g.Fruits())
	return sum
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g, cfg, err := loadGame(logger)
	if err != nil {
		return err
	}

	rc := cfg.Runtime(flagSeed)
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	start := time.Now()
	sum := simulate(g, rc, flagTicks, flagSwitchEvery, logger)
	logger.Info("simulation finished", "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:     %d\n", rc.Seed)
	fmt.Fprintf(out, "ticks:    %d\n", sum.Ticks)
	fmt.Fprintf(out, "score:    %d\n", sum.Score)
	fmt.Fprintf(out, "spawns:   %d\n", sum.Spawns)
	fmt.Fprintf(out, "catches:  %d\n", sum.Catches)
	fmt.Fprintf(out, "culls:    %d\n", sum.Culls)
	fmt.Fprintf(out, "live:     %d\n", sum.Live)
	if sum.Errors > 0 {
		fmt.Fprintf(out, "errors:   %d\n", sum.Errors)
	}
	return nil
}
