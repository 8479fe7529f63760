package driver

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CI314X/wordle/internal/game"
)

var (
	tile = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	tileStyles = map[game.Mark]lipgloss.Style{
		game.MarkHit: tile.
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.AdaptiveColor{Light: "#538d4e", Dark: "#538d4e"}),
		game.MarkPresent: tile.
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.AdaptiveColor{Light: "#b59f3b", Dark: "#b59f3b"}),
		game.MarkMiss: tile.
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
			Background(lipgloss.AdaptiveColor{Light: "#d3d6da", Dark: "#3a3a3c"}),
	}
)

// RenderTurn draws guess as a row of tiles colored by fb. Letters are
// upper-cased; guess and fb must have the same rune length.
func RenderTurn(guess string, fb game.Feedback) string {
	letters := []rune(strings.ToUpper(guess))
	cells := make([]string, 0, len(letters))
	for i, r := range letters {
		st := tile
		if i < len(fb) {
			if s, ok := tileStyles[fb[i]]; ok {
				st = s
			}
		}
		cells = append(cells, st.Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
