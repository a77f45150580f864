// Package cli runs the simulation headless and prints the conversation
// transcript as plain text, one line per delivered utterance.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jalvik/palaver/engine"
	"github.com/jalvik/palaver/sim"
	"github.com/jalvik/palaver/types"
	"github.com/jalvik/palaver/world"
)

// CLI drives the demo world for a fixed number of turns and writes every
// delivered line to Out.
type CLI struct {
	World *sim.World
	Orch  *engine.Orchestrator
	Out   io.Writer

	// ShowTurns prints a marker at every turn boundary, not just turns with
	// dialogue.
	ShowTurns bool
}

// New builds a CLI over the loaded templates. Seed fixes the run; verbose
// enables engine debug logging to stderr.
func New(templates []types.Template, seed int64, verbose bool) *CLI {
	rng := engine.NewRNG(seed)
	w := sim.New(rng)

	c := &CLI{World: w, Out: os.Stdout}

	var log *slog.Logger
	if verbose {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	svc := w.Services(world.DeliveryFunc(c.deliver))
	c.Orch = engine.New(engine.DefaultConfig(), templates, svc, rng, log)
	return c
}

// Run advances the world the given number of turns.
func (c *CLI) Run(turns int) {
	for i := 0; i < turns; i++ {
		if c.ShowTurns {
			fmt.Fprintf(c.Out, "--- turn %d ---\n", c.World.CurrentTurn()+1)
		}
		c.World.Step(c.Orch)
	}
}

// deliver formats one utterance. Speaker and listener resolve to display
// names; entities that vanished mid-conversation fall back to their IDs.
func (c *CLI) deliver(u types.Utterance) {
	fmt.Fprintf(c.Out, "[T%03d] %s -> %s (%s, %s): %s\n",
		u.Turn,
		c.displayName(u.Speaker),
		c.displayName(u.Listener),
		u.Topic, u.Tone, u.Text)
}

func (c *CLI) displayName(id types.EntityID) string {
	if m, ok := c.World.Member(id); ok {
		return m.Name
	}
	return string(id)
}
