package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/kicktris/internal/game"
	"github.com/hersh/kicktris/internal/piece"
)

// FrameMsg drives one controller tick.
type FrameMsg time.Time

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenPlaying
	ScreenGameOver
)

const (
	frameInterval = time.Second / 60
	// Terminals report no key release, so a held soft drop ends once the
	// key stops auto-repeating for this long.
	softDropRelease = 400 * time.Millisecond
)

type Model struct {
	screen    Screen
	cfg       game.Config
	clock     piece.Clock
	logger    *log.Logger
	gameState *game.GameState
	games     int64

	keys       keyMap
	help       help.Model
	width      int
	height     int
	softDropAt time.Time
}

// NewModel creates the single-player TUI model.
func NewModel(cfg game.Config, clock piece.Clock, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = true
	return Model{
		screen: ScreenWelcome,
		cfg:    cfg,
		clock:  clock,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   h,
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case FrameMsg:
		return m.handleFrame()
	}
	return m, nil
}

// --- Key handlers ---

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	// Don't quit during gameplay with q
	if m.screen != ScreenPlaying && key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKeys(msg)
	case ScreenPlaying:
		return m.handlePlayingKeys(msg)
	case ScreenGameOver:
		return m.handleGameOverKeys(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Start) {
		cfg := m.cfg
		cfg.Seed += m.games
		m.games++
		m.gameState = game.NewGameState(cfg, m.clock, m.logger)
		m.screen = ScreenPlaying
	}
	return m, nil
}

func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gameState == nil {
		return m, nil
	}
	in := m.gameState.Input

	switch {
	case key.Matches(msg, m.keys.Left):
		in.Press(piece.MoveLeft)
	case key.Matches(msg, m.keys.Right):
		in.Press(piece.MoveRight)
	case key.Matches(msg, m.keys.RotateLeft):
		in.Press(piece.RotateLeft)
	case key.Matches(msg, m.keys.RotateRight):
		in.Press(piece.RotateRight)
	case key.Matches(msg, m.keys.HardDrop):
		in.Press(piece.HardDrop)
	case key.Matches(msg, m.keys.Restart):
		in.Press(piece.Restart)
	case key.Matches(msg, m.keys.SoftDrop):
		in.PressSoftDrop()
		m.softDropAt = m.clock.Now()
	}
	return m, nil
}

func (m Model) handleGameOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Restart):
		m.gameState.Input.ReleaseSoftDrop()
		m.gameState.Input.Press(piece.Restart)
		m.screen = ScreenPlaying
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenWelcome
		m.gameState = nil
	}
	return m, nil
}

// --- Frame handler ---

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.screen != ScreenPlaying || m.gameState == nil {
		return m, frameCmd()
	}

	in := m.gameState.Input
	if in.SoftDropHeld() && m.clock.Now().Sub(m.softDropAt) > softDropRelease {
		in.ReleaseSoftDrop()
	}

	m.gameState.Tick()

	if m.gameState.IsGameOver() {
		m.screen = ScreenGameOver
	}
	return m, frameCmd()
}

// --- View ---

func (m Model) View() string {
	switch m.screen {
	case ScreenWelcome:
		return m.renderCentered(RenderWelcome())
	case ScreenPlaying:
		return m.renderPlaying()
	case ScreenGameOver:
		return m.renderGameOver()
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying() string {
	if m.gameState == nil {
		return "Loading..."
	}

	board := RenderBoard(m.gameState)
	info := RenderInfo(m.gameState)

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(info)

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(board)

	rightPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(m.help.View(m.keys))

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
		rightPanel,
	)

	return m.renderCentered(mainContent)
}

func (m Model) renderGameOver() string {
	if m.gameState == nil {
		return m.renderCentered("Game Over")
	}
	content := RenderSingleGameOver(m.gameState.Score, m.gameState.Lines, m.gameState.Level)
	content += "\n\nPress R to play again, ENTER for the menu"
	return m.renderCentered(content)
}
