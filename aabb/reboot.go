package aabb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadInput indicates a malformed reboot step.
var ErrBadInput = errors.New("aabb: malformed reboot step")

// InitRegion is the initialization procedure area, -50..50 on every axis.
var InitRegion = Box{Min: [3]int{-50, -50, -50}, Max: [3]int{50, 50, 50}}

// Step turns every cube of Box on or off.
type Step struct {
	On bool
	Box
}

func (s Step) String() string {
	if s.On {
		return "on " + s.Box.String()
	}
	return "off " + s.Box.String()
}

// ParseSteps reads one step per line in the form
//
//	on x=-20..26,y=-36..17,z=-47..7
//
// Blank lines are skipped. Ranges given high..low are rejected.
func ParseSteps(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		step, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("aabb: read steps: %w", err)
	}
	return steps, nil
}

func parseStep(line string) (Step, error) {
	var (
		state, rest string
		box         Box
	)
	// the trailing %s only matches when something follows the last range
	n, err := fmt.Sscanf(line, "%s x=%d..%d,y=%d..%d,z=%d..%d%s", &state,
		&box.Min[0], &box.Max[0], &box.Min[1], &box.Max[1], &box.Min[2], &box.Max[2], &rest)
	switch {
	case n < 7:
		return Step{}, fmt.Errorf("%w: %q: %v", ErrBadInput, line, err)
	case n == 8:
		return Step{}, fmt.Errorf("%w: %q: trailing %q", ErrBadInput, line, rest)
	}
	if box.Empty() {
		return Step{}, fmt.Errorf("%w: %q: inverted range", ErrBadInput, line)
	}

	switch state {
	case "on":
		return Step{On: true, Box: box}, nil
	case "off":
		return Step{On: false, Box: box}, nil
	default:
		return Step{}, fmt.Errorf("%w: %q: unknown state %q", ErrBadInput, line, state)
	}
}

// Reboot applies steps in order to an all-off reactor and returns the number
// of cubes left on. If clip is non-nil only cubes inside it are considered.
func Reboot(steps []Step, clip *Box) int {
	var s Set
	for _, step := range steps {
		box := step.Box
		if clip != nil {
			var ok bool
			if box, ok = box.Intersect(*clip); !ok {
				continue
			}
		}
		if step.On {
			s.Insert(box)
		} else {
			s.Remove(box)
		}
	}
	return s.Volume()
}
