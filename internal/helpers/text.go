package helpers

import (
	"strings"
	"unicode/utf8"

	"github.com/acarl005/stripansi"
)

func HintText(s string) string {
	return "\033[38;5;245m" + s + "\033[0m"
}

func HighlightText(s string) string {
	return "\033[1m" + s + "\033[0m"
}

// VisibleWidth counts runes as they appear on a terminal, ignoring ANSI codes.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(stripansi.Strip(s))
}

func PadRight(s string, width int) string {
	return s + strings.Repeat(" ", MaxInt(0, width-VisibleWidth(s)))
}

func PadLeft(s string, width int) string {
	return strings.Repeat(" ", MaxInt(0, width-VisibleWidth(s))) + s
}

// Truncate cuts plain text to width runes, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
