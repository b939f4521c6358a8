package art

import (
	"strings"
	"unicode"
)

// Split turns one image into n frames. Frame 0 is blank, frame n-1 is the
// whole image, and each frame in between shows a larger share of the
// visible characters, bottom row first, left to right. Hidden characters
// become spaces so the picture keeps its shape.
func Split(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}

	grid := make([][]rune, len(lines))
	for i, l := range lines {
		grid[i] = []rune(strings.TrimRight(l, " \t\r"))
	}

	type cell struct{ row, col int }
	var order []cell
	for row := len(grid) - 1; row >= 0; row-- {
		for col, r := range grid[row] {
			if !unicode.IsSpace(r) {
				order = append(order, cell{row, col})
			}
		}
	}

	frames := make([]string, n)
	for k := 0; k < n; k++ {
		shown := len(order)
		if n > 1 {
			shown = k * len(order) / (n - 1)
		}

		canvas := make([][]rune, len(grid))
		for i := range grid {
			canvas[i] = []rune(strings.Repeat(" ", len(grid[i])))
		}
		for _, c := range order[:shown] {
			canvas[c.row][c.col] = grid[c.row][c.col]
		}

		out := make([]string, len(canvas))
		for i, row := range canvas {
			out[i] = strings.TrimRight(string(row), " ")
		}
		frames[k] = strings.Join(out, "\n")
	}
	return frames
}
