package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Tile returns the n×n enlargement of gg. Tile (tx,ty) holds the original
// values increased by tx+ty, wrapping from 9 back to 1.
// Options (connectivity, walls) are inherited.
func (gg *GridGraph) Tile(n int) (*GridGraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadTile, n)
	}
	values := make([][]int, gg.Height*n)
	for y := range values {
		values[y] = make([]int, gg.Width*n)
		ty, oy := y/gg.Height, y%gg.Height
		for x := range values[y] {
			tx, ox := x/gg.Width, x%gg.Width
			values[y][x] = (gg.CellValues[oy][ox]+tx+ty-1)%9 + 1
		}
	}

	return NewGridGraph(values, GridOptions{Conn: gg.Conn, WallThreshold: gg.WallThreshold})
}

// ParseDigits reads a grid of decimal digits, one row per line.
// Blank lines are skipped; any other character yields ErrBadInput.
func ParseDigits(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, len(text))
		for i, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadInput, line, i+1, ch)
			}
			row[i] = int(ch - '0')
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading grid: %w", err)
	}

	return grid, nil
}
