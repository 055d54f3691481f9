package amphipod

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a burrow diagram:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Wall-only lines are skipped, so the first remaining line is the hallway
// and each following line is one row of rooms. Rooms must fill bottom-up and
// hold exactly depth amphipods of each kind overall.
func Parse(r io.Reader) (Burrow, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.Trim(line, "# ") == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return Burrow{}, fmt.Errorf("amphipod: read burrow: %w", err)
	}
	if len(lines) < 2 {
		return Burrow{}, fmt.Errorf("%w: need a hallway and at least one room row", ErrBadInput)
	}

	b := Burrow{depth: len(lines) - 1}
	if b.depth > maxDepth {
		return Burrow{}, fmt.Errorf("%w: rooms deeper than %d", ErrBadInput, maxDepth)
	}

	hall := lines[0]
	if len(hall) < hallLen+2 || hall[0] != '#' || hall[hallLen+1] != '#' {
		return Burrow{}, fmt.Errorf("%w: bad hallway %q", ErrBadInput, hall)
	}
	for x := 0; x < hallLen; x++ {
		c := hall[x+1]
		if !valid(c) {
			return Burrow{}, fmt.Errorf("%w: hallway cell %d is %q", ErrBadInput, x, c)
		}
		if c != empty && isDoor(x) {
			return Burrow{}, fmt.Errorf("%w: amphipod standing on door cell %d", ErrBadInput, x)
		}
		b.hall[x] = c
	}

	for i, line := range lines[1:] {
		if len(line) < 2*rooms+2 {
			return Burrow{}, fmt.Errorf("%w: short room row %q", ErrBadInput, line)
		}
		for r := 0; r < rooms; r++ {
			c := line[3+2*r]
			if !valid(c) {
				return Burrow{}, fmt.Errorf("%w: room %d slot %d is %q", ErrBadInput, r, i, c)
			}
			b.room[r][i] = c
		}
	}

	if err := b.validate(); err != nil {
		return Burrow{}, err
	}
	return b, nil
}

// validate checks gap-free rooms and a full set of every kind.
func (b Burrow) validate() error {
	var count [rooms]int
	for _, c := range b.hall {
		if c != empty {
			count[kind(c)]++
		}
	}
	for r := 0; r < rooms; r++ {
		seen := false
		for i := 0; i < b.depth; i++ {
			c := b.room[r][i]
			if c == empty {
				if seen {
					return fmt.Errorf("%w: room %d has a gap under slot %d", ErrBadInput, r, i-1)
				}
				continue
			}
			seen = true
			count[kind(c)]++
		}
	}
	for k, n := range count {
		if n != b.depth {
			return fmt.Errorf("%w: %d amphipods of kind %c, want %d", ErrBadInput, n, owner(k), b.depth)
		}
	}
	return nil
}

// Unfold inserts the two hidden rows between the first and last rows of a
// two-deep burrow:
//
//	#D#C#B#A#
//	#D#B#A#C#
func (b Burrow) Unfold() (Burrow, error) {
	if b.depth != 2 {
		return Burrow{}, fmt.Errorf("%w: depth is %d", ErrCannotUnfold, b.depth)
	}
	const row1, row2 = "DCBA", "DBAC"

	out := Burrow{hall: b.hall, depth: 4}
	for r := 0; r < rooms; r++ {
		out.room[r] = [maxDepth]byte{b.room[r][0], row1[r], row2[r], b.room[r][1]}
	}
	if err := out.validate(); err != nil {
		return Burrow{}, fmt.Errorf("%w: %w", ErrCannotUnfold, err)
	}
	return out, nil
}

func valid(c byte) bool { return c == empty || (c >= 'A' && c <= 'D') }
