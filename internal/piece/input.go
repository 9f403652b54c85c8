package piece

import "sync/atomic"

// Action is a one-shot, edge-triggered command.
type Action int

const (
	Restart Action = iota
	MoveLeft
	MoveRight
	RotateLeft
	RotateRight
	HardDrop
	actionCount
)

// Priority is the order in which pending actions are handled within a tick.
var Priority = [actionCount]Action{Restart, MoveLeft, MoveRight, RotateLeft, RotateRight, HardDrop}

var actionNames = [actionCount]string{"restart", "move-left", "move-right", "rotate-left", "rotate-right", "hard-drop"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Input buffers device events between ticks. Each action has a single slot:
// repeated presses before the next tick coalesce into one. Soft drop is a
// level that stays set between Press and Release.
//
// Press and the soft-drop methods may be called from any goroutine.
type Input struct {
	pending  [actionCount]atomic.Bool
	softDrop atomic.Bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Press(a Action) {
	if a < 0 || a >= actionCount {
		return
	}
	in.pending[a].Store(true)
}

func (in *Input) PressSoftDrop() {
	in.softDrop.Store(true)
}

func (in *Input) ReleaseSoftDrop() {
	in.softDrop.Store(false)
}

func (in *Input) SoftDropHeld() bool {
	return in.softDrop.Load()
}

// Pending reports whether a is waiting to be consumed.
func (in *Input) Pending(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return in.pending[a].Load()
}

// Take consumes a, reporting whether it was pending.
func (in *Input) Take(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return in.pending[a].Swap(false)
}

// Discard drops every pending one-shot action. The soft-drop level is kept.
func (in *Input) Discard() {
	for i := range in.pending {
		in.pending[i].Store(false)
	}
}
