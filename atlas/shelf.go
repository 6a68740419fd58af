package atlas

// shelfAllocator implements first-fit shelf-based rectangle packing,
// chosen per SPEC_FULL.md §9 over best-fit for its O(shelves) allocate cost
// under heavy churn.
//
// Rectangles are organized into horizontal shelves. Each shelf has a fixed
// height (the tallest item placed on it so far). New items are placed
// left-to-right on the first shelf with enough room, then a new shelf is
// started below.
type shelfAllocator struct {
	width   int
	height  int
	padding int
	shelves []shelf

	usedArea int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// newShelfAllocator creates an allocator for the given atlas dimensions.
func newShelfAllocator(width, height, padding int) *shelfAllocator {
	return &shelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// allocate finds space for a rectangle of the given size, first-fit.
// Returns x, y position and true if space was found.
func (a *shelfAllocator) allocate(w, h int) (x, y int, ok bool) {
	if w > a.width {
		return -1, -1, false
	}

	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]

		if s.x+paddedW > a.width {
			continue
		}

		if h > s.height {
			// Item is taller than this shelf; only the last shelf can grow.
			if i == len(a.shelves)-1 {
				newBottom := s.y + paddedH
				if newBottom <= a.height {
					s.height = h
					x, y = s.x, s.y
					s.x += paddedW
					a.usedArea += w * h
					return x, y, true
				}
			}
			continue
		}

		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}

	if newY+paddedH > a.height {
		return -1, -1, false
	}

	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	a.usedArea += w * h
	return 0, newY, true
}

// reset clears all allocations, keeping backing capacity for reuse after a
// full atlas rebuild (e.g. on ErrDeviceLost recovery).
func (a *shelfAllocator) reset() {
	a.shelves = a.shelves[:0]
	a.usedArea = 0
}

// utilization returns the fraction of atlas area currently allocated.
func (a *shelfAllocator) utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}
