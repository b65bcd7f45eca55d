package engine

// Score is a run's score. It can only grow.
type Score struct {
	value int
}

// Add increases the score by n. Non-positive amounts are ignored.
func (s *Score) Add(n int) {
	if n > 0 {
		s.value += n
	}
}

// Value returns the current score.
func (s Score) Value() int {
	return s.value
}

// Reset sets the score back to zero for a new run.
func (s *Score) Reset() {
	s.value = 0
}
