package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/kicktris/internal/game"
	"github.com/hersh/kicktris/internal/piece"
)

var (
	// indexed by piece.Definition.Color
	colors = []string{
		"0",
		"196", // Z
		"46",  // S
		"226", // O
		"21",  // J
		"201", // T
		"51",  // I
		"208", // L
		"248",
	}

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)
)

func colorFor(index int) string {
	if index < 0 || index >= len(colors) {
		return colors[len(colors)-1]
	}
	return colors[index]
}

// RenderBoard draws the grid top row first. The active piece is already part
// of the grid between ticks; its landing spot is drawn as a ghost.
func RenderBoard(gs *game.GameState) string {
	var sb strings.Builder
	b := gs.Board

	ghost := map[piece.Vec]bool{}
	if at, ok := gs.Ghost(); ok {
		for _, c := range gs.Controller.Active().Cells() {
			ghost[at.Add(c)] = true
		}
	}

	for y := b.Height - 1; y >= 0; y-- {
		for x := 0; x < b.Width; x++ {
			cell := b.Cells[y][x]
			char := "  "
			color := "0"

			if cell.Filled {
				char = "██"
				color = colorFor(cell.Color)
			} else if ghost[piece.Vec{X: x, Y: y}] {
				char = "[]"
				color = "244"
			}

			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(color)).
				Render(char))
		}
		if y > 0 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// RenderPiece draws a shape in its spawn orientation.
func RenderPiece(def *piece.Definition) string {
	if def == nil {
		return "Empty"
	}

	minX, maxX, minY, maxY := def.Cells[0].X, def.Cells[0].X, def.Cells[0].Y, def.Cells[0].Y
	filled := map[piece.Vec]bool{}
	for _, c := range def.Cells {
		filled[c] = true
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	var sb strings.Builder
	pieceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFor(def.Color)))

	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			if filled[piece.Vec{X: x, Y: y}] {
				sb.WriteString(pieceStyle.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if y > minY {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func RenderInfo(gs *game.GameState) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("KICKTRIS") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Player: %s", gs.PlayerName)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", gs.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Level: %d", gs.Level)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", gs.Lines)) + "\n\n")

	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	sb.WriteString(RenderPiece(gs.Next()) + "\n")

	if gs.Input.SoftDropHeld() {
		sb.WriteString("\n" + infoStyle.Render("soft drop"))
	}

	return sb.String()
}

func RenderWelcome() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(`
╔══════════════════════════════╗
║       K I C K T R I S        ║
║   wall kicks, one player     ║
╚══════════════════════════════╝

   Press ENTER or S to start
   Press Q to quit
`)
}

func RenderSingleGameOver(score, lines, level int) string {
	return gameOverStyle.Render(fmt.Sprintf("\n\n\n     GAME OVER     \n     Score: %d     \n     Lines: %d  Level: %d     \n\n\n", score, lines, level))
}
