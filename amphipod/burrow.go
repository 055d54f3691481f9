package amphipod

import (
	"errors"
	"strings"

	"github.com/katalvlaran/aocsearch/astar"
)

// Sentinel errors for burrow construction and solving.
var (
	// ErrBadInput indicates a malformed burrow diagram.
	ErrBadInput = errors.New("amphipod: malformed burrow")
	// ErrCannotUnfold indicates Unfold was called on a burrow whose rooms are not two deep.
	ErrCannotUnfold = errors.New("amphipod: only two-deep burrows can be unfolded")
)

const (
	hallLen  = 11
	rooms    = 4
	maxDepth = 4
	empty    = '.'
)

var (
	doors  = [rooms]int{2, 4, 6, 8}
	energy = [rooms]int{1, 10, 100, 1000}
)

// Burrow is one arrangement of amphipods. Slot 0 of a room is the one next
// to the hallway. Slots at index ≥ depth are unused and stay zero.
type Burrow struct {
	hall  [hallLen]byte
	room  [rooms][maxDepth]byte
	depth int
}

// Depth returns the number of slots per room.
func (b Burrow) Depth() int { return b.depth }

// Hallway returns the hallway cells, '.' for empty.
func (b Burrow) Hallway() string { return string(b.hall[:]) }

// Room returns room r from the hallway side down.
func (b Burrow) Room(r int) string { return string(b.room[r][:b.depth]) }

// Organized reports whether every room is full of its own kind.
func (b Burrow) Organized() bool {
	for r := 0; r < rooms; r++ {
		for i := 0; i < b.depth; i++ {
			if b.room[r][i] != owner(r) {
				return false
			}
		}
	}
	return true
}

// Neighbors generates every legal single move and its energy.
func (b Burrow) Neighbors() []astar.Step[Burrow, int] {
	if step, ok := b.homeMove(); ok {
		return []astar.Step[Burrow, int]{step}
	}

	var steps []astar.Step[Burrow, int]
	for r := 0; r < rooms; r++ {
		if b.clean(r) {
			continue
		}
		i := b.top(r)
		c := b.room[r][i]
		door := doors[r]
		for h := 0; h < hallLen; h++ {
			if isDoor(h) || !b.clear(min(door, h), max(door, h)) {
				continue
			}
			next := b
			next.room[r][i] = empty
			next.hall[h] = c
			steps = append(steps, astar.Step[Burrow, int]{
				Cost: (i + 1 + abs(h-door)) * energy[kind(c)],
				To:   next,
			})
		}
	}

	return steps
}

// homeMove finds an amphipod that can walk straight into its own room,
// from the hallway first, then from the top of a foreign room.
func (b Burrow) homeMove() (astar.Step[Burrow, int], bool) {
	for h := 0; h < hallLen; h++ {
		c := b.hall[h]
		if c == empty {
			continue
		}
		k := kind(c)
		if !b.clean(k) || !b.clear(between(h, doors[k])) {
			continue
		}
		j := b.deepestFree(k)
		next := b
		next.hall[h] = empty
		next.room[k][j] = c
		return astar.Step[Burrow, int]{Cost: (abs(h-doors[k]) + j + 1) * energy[k], To: next}, true
	}

	for r := 0; r < rooms; r++ {
		i := b.top(r)
		if i < 0 {
			continue
		}
		c := b.room[r][i]
		k := kind(c)
		if k == r || !b.clean(k) {
			continue
		}
		if !b.clear(min(doors[r], doors[k]), max(doors[r], doors[k])) {
			continue
		}
		j := b.deepestFree(k)
		next := b
		next.room[r][i] = empty
		next.room[k][j] = c
		return astar.Step[Burrow, int]{
			Cost: (i + 1 + abs(doors[r]-doors[k]) + j + 1) * energy[k],
			To:   next,
		}, true
	}

	return astar.Step[Burrow, int]{}, false
}

// Heuristic is an admissible lower bound on the remaining energy: every
// misplaced amphipod walks at least to the top slot of its own room, and
// an amphipod blocking strangers below it must step out and back in.
func (b Burrow) Heuristic() int {
	total := 0
	for h, c := range b.hall {
		if c == empty {
			continue
		}
		k := kind(c)
		total += (abs(h-doors[k]) + 1) * energy[k]
	}
	for r := 0; r < rooms; r++ {
		for i := 0; i < b.depth; i++ {
			c := b.room[r][i]
			if c == empty {
				continue
			}
			k := kind(c)
			switch {
			case k != r:
				total += (i + 1 + abs(doors[r]-doors[k]) + 1) * energy[k]
			case !b.settled(r, i):
				total += (i + 4) * energy[k]
			}
		}
	}
	return total
}

// clean reports whether room r holds only its own kind (or nothing).
func (b Burrow) clean(r int) bool {
	for i := 0; i < b.depth; i++ {
		if c := b.room[r][i]; c != empty && c != owner(r) {
			return false
		}
	}
	return true
}

// settled reports whether slot i of room r and everything below it belong there.
func (b Burrow) settled(r, i int) bool {
	for j := i; j < b.depth; j++ {
		if b.room[r][j] != owner(r) {
			return false
		}
	}
	return true
}

// top returns the index of the topmost occupant of room r, or -1.
func (b Burrow) top(r int) int {
	for i := 0; i < b.depth; i++ {
		if b.room[r][i] != empty {
			return i
		}
	}
	return -1
}

// deepestFree returns the lowest empty slot of room r. Rooms fill bottom-up,
// so it sits just above the topmost occupant.
func (b Burrow) deepestFree(r int) int {
	if t := b.top(r); t >= 0 {
		return t - 1
	}
	return b.depth - 1
}

// clear reports whether hallway cells lo..hi (inclusive) are all empty.
func (b Burrow) clear(lo, hi int) bool {
	for x := lo; x <= hi; x++ {
		if b.hall[x] != empty {
			return false
		}
	}
	return true
}

// between returns the hallway span walked from h to door d, excluding h.
func between(h, d int) (lo, hi int) {
	if h < d {
		return h + 1, d
	}
	return d, h - 1
}

// String renders the burrow in the puzzle's diagram format.
func (b Burrow) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	sb.Write(b.hall[:])
	sb.WriteString("#\n")
	for i := 0; i < b.depth; i++ {
		if i == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for r := 0; r < rooms; r++ {
			sb.WriteByte(b.room[r][i])
			sb.WriteByte('#')
		}
		if i == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########\n")
	return sb.String()
}

func owner(r int) byte  { return byte('A' + r) }
func kind(c byte) int   { return int(c - 'A') }
func isDoor(x int) bool { return x == 2 || x == 4 || x == 6 || x == 8 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
