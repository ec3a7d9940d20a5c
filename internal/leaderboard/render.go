package leaderboard

import (
	"fmt"
	"strings"

	. "github.com/cricklet/glicko2/internal/helpers"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	// Width of the whole table; names are truncated to fit. Zero uses the
	// terminal width.
	Width   int
	ShowElo bool
	Color   bool
}

func formatRating(x float64) string {
	return humanize.FormatFloat("#,###.##", x)
}

// Render draws rows as an aligned table, ranked in the order given.
func Render[ID comparable](rows []Row[ID], options RenderOptions) string {
	width := options.Width
	if width <= 0 {
		width = TermWidth()
	}

	header := []string{"#", "player", "rating", "rd", "volatility", "95% interval"}
	if options.ShowElo {
		header = append(header, "elo")
	}

	table := [][]string{header}
	for i, row := range rows {
		interval := fmt.Sprintf("[%s, %s]", formatRating(row.Low), formatRating(row.High))
		if options.Color {
			interval = HintText(interval)
		}
		line := []string{
			humanize.Comma(int64(i + 1)),
			fmt.Sprint(row.ID),
			formatRating(row.Rating),
			formatRating(row.Deviation),
			fmt.Sprintf("%.5f", row.Volatility),
			interval,
		}
		if options.ShowElo {
			line = append(line, humanize.Comma(int64(row.Elo)))
		}
		table = append(table, line)
	}

	columnWidths := make([]int, len(header))
	for _, line := range table {
		for c, cell := range line {
			columnWidths[c] = MaxInt(columnWidths[c], VisibleWidth(cell))
		}
	}

	// shrink the player column until the table fits
	const nameColumn = 1
	total := 2 * (len(columnWidths) - 1)
	for _, w := range columnWidths {
		total += w
	}
	if overflow := total - width; overflow > 0 {
		columnWidths[nameColumn] = MaxInt(6, columnWidths[nameColumn]-overflow)
	}

	result := []string{}
	for l, line := range table {
		cells := []string{}
		for c, cell := range line {
			if c == nameColumn {
				cell = PadRight(Truncate(cell, columnWidths[c]), columnWidths[c])
			} else {
				cell = PadLeft(cell, columnWidths[c])
			}
			if l == 0 && options.Color {
				cell = HighlightText(cell)
			}
			cells = append(cells, cell)
		}
		result = append(result, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
	return strings.Join(result, "\n") + "\n"
}
