// Package cli provides shared formatting helpers for netiron CLI tools.
package cli

import (
	"os"
	"regexp"
	"strings"
)

// colorEnabled is false when NO_COLOR env var is set (per no-color.org).
var colorEnabled = os.Getenv("NO_COLOR") == ""

// Green wraps s in ANSI green. Returns s unchanged when NO_COLOR is set.
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[32m" + s + "\033[0m"
}

// Yellow wraps s in ANSI yellow. Returns s unchanged when NO_COLOR is set.
func Yellow(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[33m" + s + "\033[0m"
}

// Red wraps s in ANSI red. Returns s unchanged when NO_COLOR is set.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[31m" + s + "\033[0m"
}

// Bold wraps s in ANSI bold. Returns s unchanged when NO_COLOR is set.
func Bold(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

// Dim wraps s in ANSI dim. Returns s unchanged when NO_COLOR is set.
func Dim(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[2m" + s + "\033[0m"
}

var ansiRe = regexp.MustCompile("\x1b\\[[0-9;]*m")

// visualLen is the printed width of s, ignoring ANSI escapes.
func visualLen(s string) int {
	return len([]rune(ansiRe.ReplaceAllString(s, "")))
}

// capWidths shrinks column widths until the table fits the terminal.
// The widest column above its header length gives way first; no column
// shrinks below its header, even if the table then overflows.
func capWidths(widths []int, headers []string, termWidth, prefix int) []int {
	out := append([]int(nil), widths...)
	mins := make([]int, len(headers))
	for i, h := range headers {
		mins[i] = visualLen(h)
	}

	total := func() int {
		t := prefix + 2*(len(out)-1)
		for _, w := range out {
			t += w
		}
		return t
	}
	for total() > termWidth {
		widest := -1
		for i, w := range out {
			if w > mins[i] && (widest == -1 || w > out[widest]) {
				widest = i
			}
		}
		if widest == -1 {
			break
		}
		out[widest]--
	}
	return out
}

// wrapCell word-wraps a cell to the given width, hard-breaking words
// longer than a full line. A cell that already fits comes back as a
// single line, ANSI escapes and all.
func wrapCell(s string, width int) []string {
	if width <= 0 || visualLen(s) <= width {
		return []string{s}
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		for visualLen(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case word == "":
		case line == "":
			line = word
		case visualLen(line)+1+visualLen(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
