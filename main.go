package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/kicktris/internal/game"
	"github.com/hersh/kicktris/internal/piece"
	"github.com/hersh/kicktris/internal/tui"
)

// Single-player entry point. Settings come from the KICKTRIS_* environment
// variables and are overridden by flags.
//
//	go run . --name YourName --speedup

const debugLogPath = "kicktris-debug.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := game.DefaultConfig()
	cfg.Seed = time.Now().UnixNano()
	if u, err := user.Current(); err == nil && u.Username != "" {
		cfg.PlayerName = u.Username
	}
	if err := cfg.LoadEnv(); err != nil {
		return err
	}

	flag.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "Player name (defaults to OS username)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the piece sequence")
	flag.DurationVar(&cfg.Timing.StepDelay, "step", cfg.Timing.StepDelay, "Gravity interval")
	flag.DurationVar(&cfg.Timing.MoveDelay, "move", cfg.Timing.MoveDelay, "Soft drop repeat interval")
	flag.DurationVar(&cfg.Timing.LockDelay, "lock", cfg.Timing.LockDelay, "Lock delay")
	flag.BoolVar(&cfg.SpeedCurve, "speedup", cfg.SpeedCurve, "Speed up gravity with the level")
	debug := flag.Bool("debug", false, "Write a debug log to "+debugLogPath)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if *debug {
		f, err := tea.LogToFile(debugLogPath, "kicktris")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("starting: seed=%d timing=%+v speedup=%v", cfg.Seed, cfg.Timing, cfg.SpeedCurve)

	model := tui.NewModel(cfg, piece.SystemClock{}, log.Default())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
