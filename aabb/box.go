package aabb

import "fmt"

// Box is an inclusive integer cuboid. A box with Min[i] > Max[i] on any axis
// is empty.
type Box struct {
	Min, Max [3]int
}

// NewBox builds the box spanning two corners given in any order.
func NewBox(a, b [3]int) Box {
	var box Box
	for i := 0; i < 3; i++ {
		box.Min[i], box.Max[i] = min(a[i], b[i]), max(a[i], b[i])
	}
	return box
}

// Empty reports whether the box covers no cells.
func (b Box) Empty() bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] > b.Max[i] {
			return true
		}
	}
	return false
}

// Volume returns the number of lattice cells covered.
func (b Box) Volume() int {
	if b.Empty() {
		return 0
	}
	v := 1
	for i := 0; i < 3; i++ {
		v *= b.Max[i] - b.Min[i] + 1
	}
	return v
}

// Intersect returns the common part of b and o; ok is false if they are disjoint.
func (b Box) Intersect(o Box) (Box, bool) {
	var out Box
	for i := 0; i < 3; i++ {
		out.Min[i] = max(b.Min[i], o.Min[i])
		out.Max[i] = min(b.Max[i], o.Max[i])
	}
	if out.Empty() {
		return Box{}, false
	}
	return out, true
}

// Overlaps reports whether b and o share at least one cell.
func (b Box) Overlaps(o Box) bool {
	_, ok := b.Intersect(o)
	return ok
}

// Contains reports whether every cell of o is also in b. An empty o is
// contained in anything.
func (b Box) Contains(o Box) bool {
	if o.Empty() {
		return true
	}
	for i := 0; i < 3; i++ {
		if o.Min[i] < b.Min[i] || o.Max[i] > b.Max[i] {
			return false
		}
	}
	return true
}

func (b Box) String() string {
	return fmt.Sprintf("x=%d..%d,y=%d..%d,z=%d..%d",
		b.Min[0], b.Max[0], b.Min[1], b.Max[1], b.Min[2], b.Max[2])
}

// Except returns a minus b as at most six disjoint boxes. Along each axis in
// turn the slabs of a below and above b are cut off, then a is narrowed to
// b's extent on that axis.
func Except(a, b Box) []Box {
	if a.Empty() {
		return nil
	}
	inter, ok := a.Intersect(b)
	if !ok {
		return []Box{a}
	}

	out := make([]Box, 0, 6)
	rest := a
	for axis := 0; axis < 3; axis++ {
		if rest.Min[axis] < inter.Min[axis] {
			below := rest
			below.Max[axis] = inter.Min[axis] - 1
			out = append(out, below)
		}
		if rest.Max[axis] > inter.Max[axis] {
			above := rest
			above.Min[axis] = inter.Max[axis] + 1
			out = append(out, above)
		}
		rest.Min[axis], rest.Max[axis] = inter.Min[axis], inter.Max[axis]
	}
	return out
}
