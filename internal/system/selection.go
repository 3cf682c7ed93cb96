package system

// Selection tracks the highlighted row in the process table. It is owned
// by the UI loop and needs no locking.
type Selection struct {
	cursor int
}

// Cursor returns the current row index.
func (s *Selection) Cursor() int {
	return s.cursor
}

// MoveUp moves one row toward the top, stopping at 0.
func (s *Selection) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves one row toward the bottom, stopping at length-1.
func (s *Selection) MoveDown(length int) {
	if s.cursor < length-1 {
		s.cursor++
	}
}

// MoveToEnd jumps to the last row. An empty list leaves the cursor at 0.
func (s *Selection) MoveToEnd(length int) {
	if length > 0 {
		s.cursor = length - 1
	}
}

// Clamp pulls the cursor back into range after the list shrinks. An
// empty list clamps to 0.
func (s *Selection) Clamp(length int) {
	max := length - 1
	if max < 0 {
		max = 0
	}
	if s.cursor > max {
		s.cursor = max
	}
}

// Reset returns the cursor to the top. Called when the sort order
// changes so the highlight doesn't silently land on a different process.
func (s *Selection) Reset() {
	s.cursor = 0
}
