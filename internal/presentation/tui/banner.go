package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  _                                _                     ", "#818cf8"},
		{" | |_ _ __ __ _ _ __  ___  __| |_   _  ___ ___ _ __ ", "#a78bfa"},
		{" | __| '__/ _` | '_ \\/ __|/ _` | | | |/ __/ _ \\ '__|", "#c084fc"},
		{" | |_| | | (_| | | | \\__ \\ (_| | |_| | (_|  __/ |   ", "#e879f9"},
		{"  \\__|_|  \\__,_|_| |_|___/\\__,_|\\__,_|\\___\\___|_|   ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
