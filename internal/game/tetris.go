package game

import (
	"context"
	"log"
	"time"

	"github.com/hersh/kicktris/internal/piece"
	"github.com/looplab/fsm"
)

const (
	StatePlaying = "playing"
	StateOver    = "over"

	eventTopOut  = "top_out"
	eventRestart = "restart"
)

// GameState owns the board and the piece controller and plays the board
// side of the controller contract: line clears, scoring, spawning, restart.
type GameState struct {
	Board      *Board
	Controller *piece.Controller
	Input      *piece.Input
	Score      int
	Level      int
	Lines      int
	PlayerName string

	cfg       Config
	gen       *PieceGenerator
	lifecycle *fsm.FSM
	logger    *log.Logger
}

// NewGameState creates a game and spawns its first piece. A nil logger
// means log.Default.
func NewGameState(cfg Config, clock piece.Clock, logger *log.Logger) *GameState {
	if logger == nil {
		logger = log.Default()
	}
	gs := &GameState{
		Board:      NewBoard(),
		Input:      piece.NewInput(),
		Level:      1,
		PlayerName: cfg.PlayerName,
		cfg:        cfg,
		gen:        NewPieceGenerator(cfg.Seed),
		logger:     logger,
	}
	gs.lifecycle = fsm.NewFSM(
		StatePlaying,
		fsm.Events{
			{Name: eventTopOut, Src: []string{StatePlaying}, Dst: StateOver},
			{Name: eventRestart, Src: []string{StateOver}, Dst: StatePlaying},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				gs.logger.Printf("game %s: %s -> %s (score %d, lines %d)", e.Event, e.Src, e.Dst, gs.Score, gs.Lines)
			},
		},
	)
	gs.Controller = piece.NewController(gs, clock, gs.Input, cfg.Timing)
	gs.Controller.SetStepDelay(gs.DropSpeed())
	gs.SpawnPiece()
	return gs
}

// State is the lifecycle state, StatePlaying or StateOver.
func (gs *GameState) State() string {
	return gs.lifecycle.Current()
}

func (gs *GameState) IsGameOver() bool {
	return gs.lifecycle.Is(StateOver)
}

// Tick advances the game by one frame.
func (gs *GameState) Tick() {
	gs.Controller.Tick()
}

// Next is the shape the following spawn will use.
func (gs *GameState) Next() *piece.Definition {
	return gs.gen.Peek()
}

// Ghost returns the landing position of the active piece.
func (gs *GameState) Ghost() (piece.Vec, bool) {
	p := gs.Controller.Active()
	if p == nil {
		return piece.Vec{}, false
	}
	return gs.Board.GhostPosition(p), true
}

func (gs *GameState) IsValidPosition(cells [4]piece.Vec, position piece.Vec) bool {
	return gs.Board.IsValidPosition(cells, position)
}

func (gs *GameState) Set(p *piece.Piece) {
	gs.Board.Set(p)
}

func (gs *GameState) Clear(p *piece.Piece) {
	gs.Board.Clear(p)
}

func (gs *GameState) ClearLines() {
	linesCleared := gs.Board.ClearLines()
	if linesCleared == 0 {
		return
	}

	gs.Lines += linesCleared
	gs.Score += gs.calculateScore(linesCleared)
	gs.logger.Printf("cleared %d lines (total %d, score %d)", linesCleared, gs.Lines, gs.Score)

	if level := gs.Lines/10 + 1; level != gs.Level {
		gs.Level = level
		gs.Controller.SetStepDelay(gs.DropSpeed())
		gs.logger.Printf("level %d, step delay %v", gs.Level, gs.DropSpeed())
	}
}

// SpawnPiece hands the next shape to the controller. A spawn that does not
// fit ends the game.
func (gs *GameState) SpawnPiece() {
	if gs.IsGameOver() {
		return
	}

	def := gs.gen.Next()
	p := gs.Controller.Spawn(def, SpawnPosition)
	if !gs.Board.IsValidPosition(p.Cells(), p.Position()) {
		gs.Controller.Relinquish()
		gs.logger.Printf("spawn of %s blocked at %v", def.ID, SpawnPosition)
		gs.fire(eventTopOut)
		return
	}
	gs.Board.Set(p)
}

func (gs *GameState) RestartGame() {
	gs.Controller.Relinquish()
	gs.Board.Reset()
	gs.Score = 0
	gs.Lines = 0
	gs.Level = 1
	gs.Controller.SetStepDelay(gs.DropSpeed())

	if gs.lifecycle.Can(eventRestart) {
		gs.fire(eventRestart)
	} else {
		gs.logger.Printf("game restarted")
	}
	gs.SpawnPiece()
}

func (gs *GameState) fire(event string) {
	if err := gs.lifecycle.Event(context.Background(), event); err != nil {
		gs.logger.Printf("lifecycle %s: %v", event, err)
	}
}

func (gs *GameState) calculateScore(lines int) int {
	baseScores := map[int]int{
		1: 100,
		2: 300,
		3: 500,
		4: 800,
	}
	if score, ok := baseScores[lines]; ok {
		return score * gs.Level
	}
	return 0
}

// DropSpeed is the gravity interval for the current level.
func (gs *GameState) DropSpeed() time.Duration {
	if !gs.cfg.SpeedCurve {
		return gs.cfg.Timing.StepDelay
	}

	speeds := []time.Duration{
		800 * time.Millisecond,
		720 * time.Millisecond,
		630 * time.Millisecond,
		550 * time.Millisecond,
		470 * time.Millisecond,
		380 * time.Millisecond,
		300 * time.Millisecond,
		220 * time.Millisecond,
		130 * time.Millisecond,
		100 * time.Millisecond,
		80 * time.Millisecond,
		80 * time.Millisecond,
		80 * time.Millisecond,
		70 * time.Millisecond,
		70 * time.Millisecond,
		70 * time.Millisecond,
		50 * time.Millisecond,
		50 * time.Millisecond,
		50 * time.Millisecond,
		30 * time.Millisecond,
	}

	if gs.Level > len(speeds) {
		return speeds[len(speeds)-1]
	}
	return speeds[gs.Level-1]
}
