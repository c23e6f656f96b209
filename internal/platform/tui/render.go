package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geocoin/internal/core"
	"github.com/vovakirdan/geocoin/internal/game"
	"github.com/vovakirdan/geocoin/internal/grid"
	"github.com/vovakirdan/geocoin/internal/world"
)

// Map glyphs that do not depend on coin kinds.
const (
	playerRune    = '@'
	emptySiteRune = '·'
	cellWidth     = 2 // Characters per grid cell, keeps the map roughly square
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawMap draws the caches around the player into s inside a frame.
// Only caches within the visibility radius are drawn.
func DrawMap(s *core.Screen, session *game.Session) {
	s.Clear()
	frame := core.NewRect(0, 0, s.Width(), s.Height())
	s.DrawBox(frame, core.ColorGray)

	here := session.Cell()
	view := core.NewViewport(frame.Inner(), here, cellWidth)

	sites := make(map[grid.Cell]world.Site)
	for _, site := range session.VisibleSites() {
		sites[site.Cell] = site
	}

	for _, cell := range view.Cells() {
		x, y, _ := view.ToScreen(cell)
		switch site, ok := sites[cell]; {
		case cell == here:
			s.SetColor(x, y, playerRune, core.ColorBrightWhite)
		case ok:
			r, c := siteGlyph(site)
			s.SetColor(x, y, r, c)
		}
	}

	title := " " + here.String() + " "
	s.DrawTextColor(2, 0, title, core.ColorGray)
}

// siteGlyph picks the rune for a cache from its most valuable coin.
func siteGlyph(site world.Site) (rune, core.Color) {
	best := site.Best()
	if best == nil {
		return emptySiteRune, core.ColorGray
	}
	g := core.KindGlyph(best.Kind().Name)
	return g.Rune, g.Color
}
