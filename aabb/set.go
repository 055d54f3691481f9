package aabb

// Set is a union of pairwise-disjoint boxes. The zero value is an empty set
// ready to use. A Set is not safe for concurrent mutation.
type Set struct {
	boxes []Box
}

// Insert adds every cell of b. Cells already present are not duplicated.
func (s *Set) Insert(b Box) {
	if b.Empty() {
		return
	}
	s.Remove(b)
	s.boxes = append(s.boxes, b)
}

// Remove deletes every cell of b, splitting boxes it cuts through.
func (s *Set) Remove(b Box) {
	if b.Empty() {
		return
	}
	kept := make([]Box, 0, len(s.boxes))
	for _, box := range s.boxes {
		if !box.Overlaps(b) {
			kept = append(kept, box)
			continue
		}
		kept = append(kept, Except(box, b)...)
	}
	s.boxes = kept
}

// Volume returns the number of cells in the set.
func (s *Set) Volume() int {
	total := 0
	for _, box := range s.boxes {
		total += box.Volume()
	}
	return total
}

// VolumeWithin returns the number of cells of the set inside clip.
func (s *Set) VolumeWithin(clip Box) int {
	total := 0
	for _, box := range s.boxes {
		if part, ok := box.Intersect(clip); ok {
			total += part.Volume()
		}
	}
	return total
}

// Contains reports whether cell p is in the set.
func (s *Set) Contains(p [3]int) bool {
	cell := Box{Min: p, Max: p}
	for _, box := range s.boxes {
		if box.Contains(cell) {
			return true
		}
	}
	return false
}

// Boxes returns a copy of the disjoint boxes making up the set.
func (s *Set) Boxes() []Box {
	out := make([]Box, len(s.boxes))
	copy(out, s.boxes)
	return out
}

// Len returns the number of boxes, not cells.
func (s *Set) Len() int { return len(s.boxes) }
