package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Switchyard banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"  ___        _ _      _                       _ ", "#818cf8"},
		{" / __|_ __ _(_) |_ __| |_ _  _ __ _ _ _ __| |", "#a78bfa"},
		{" \\__ \\ V  V / |  _/ _| ' \\ || / _` | '_/ _` |", "#c084fc"},
		{" |___/\\_/\\_/|_|\\__\\__|_||_\\_, \\__,_|_| \\__,_|", "#e879f9"},
		{"                          |__/                ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
