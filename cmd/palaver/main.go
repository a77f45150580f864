// Palaver is a conversation orchestrator demo: factioned actors wander a
// grid world and strike up template-driven exchanges.
// Usage: palaver [--version] [--plain] [--seed <n>] [--turns <n>] [--verbose] <content_directory>
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/jalvik/palaver/cli"
	"github.com/jalvik/palaver/loader"
	"github.com/jalvik/palaver/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	verbose := false
	var seed int64 = 1
	turns := 200
	var contentDir string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("palaver %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--verbose":
			verbose = true
		case "--seed":
			i++
			seed = parseIntArg(args, i, "--seed")
		case "--turns":
			i++
			turns = int(parseIntArg(args, i, "--turns"))
		default:
			if contentDir == "" {
				contentDir = args[i]
			}
		}
	}

	if contentDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: palaver [--version] [--plain] [--seed <n>] [--turns <n>] [--verbose] <content_directory>\n")
		os.Exit(1)
	}

	templates, err := loader.Load(contentDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	// Use the plain runner if --plain or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(templates, seed, verbose)
		c.Run(turns)
		return
	}

	var log *slog.Logger
	if verbose {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if err := tui.Run(templates, seed, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseIntArg(args []string, i int, flag string) int64 {
	if i >= len(args) {
		fmt.Fprintf(os.Stderr, "%s requires a number\n", flag)
		os.Exit(1)
	}
	v, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: invalid number %q\n", flag, args[i])
		os.Exit(1)
	}
	return v
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
