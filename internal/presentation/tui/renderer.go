// Package tui renders conversation output for the terminal.
package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/wanderkit/packlist/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour,
// auto-detecting the terminal background.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// PlainRenderer passes markdown through untouched, for non-TTY output.
func PlainRenderer() func(string) (string, error) {
	return func(markdown string) (string, error) {
		return markdown + "\n", nil
	}
}

// Badge returns a colored label for a disposition marker.
func Badge(d domain.Disposition, answered bool) string {
	p := termenv.ColorProfile()
	if !answered {
		return termenv.String("·").Foreground(p.Color("#6b7280")).String()
	}
	switch d {
	case domain.DispositionTake:
		return termenv.String("✔").Foreground(p.Color("#34d399")).String()
	case domain.DispositionTakeLater:
		return termenv.String("…").Foreground(p.Color("#fbbf24")).String()
	case domain.DispositionSkip:
		return termenv.String("✘").Foreground(p.Color("#f87171")).String()
	}
	return "·"
}

// PrintBanner outputs the greeting banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String("  ___          _    _ _    _   ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" | _ \\__ _ __| |__| (_)__| |_ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" |  _/ _` / _| / /| | (_-<  _|").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" |_| \\__,_\\__|_\\_\\|_|_/__/\\__|").Foreground(p.Color("#e879f9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println()
}
