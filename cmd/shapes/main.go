package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/kicktris/internal/piece"
)

// shapes validates the built-in shape tables and prints every rotation
// state, with the origin cell marked.
//
//	go run ./cmd/shapes --shape T

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("244")).
			Padding(0, 1)
)

func main() {
	only := flag.String("shape", "", "Print only this shape (I, O, T, J, L, S, Z)")
	flag.Parse()

	defs := piece.Standard()
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	printed := 0
	for _, def := range defs {
		if *only != "" && !strings.EqualFold(*only, def.ID.String()) {
			continue
		}
		fmt.Println(renderShape(def))
		printed++
	}
	if printed == 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown shape %q\n", *only)
		os.Exit(1)
	}
}

func renderShape(def *piece.Definition) string {
	class := "regular"
	if def.Class == piece.CenterSymmetric {
		class = "center-symmetric"
	}

	states := make([]string, 0, 4)
	for i, cells := range def.Orientations() {
		states = append(states, stateStyle.Render(fmt.Sprintf("rotation %d\n%s", i, renderCells(cells))))
	}

	return headerStyle.Render(fmt.Sprintf("%s (%s)", def.ID, class)) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, states...)
}

// renderCells draws a fixed 4x4 window from (-1,-1) to (2,2).
func renderCells(cells [4]piece.Vec) string {
	filled := map[piece.Vec]bool{}
	for _, c := range cells {
		filled[c] = true
	}

	var sb strings.Builder
	for y := 2; y >= -1; y-- {
		for x := -1; x <= 2; x++ {
			at := piece.Vec{X: x, Y: y}
			switch {
			case filled[at]:
				sb.WriteString("██")
			case at == piece.Vec{}:
				sb.WriteString("<>")
			default:
				sb.WriteString(" .")
			}
		}
		if y > -1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
