// Package annotate keeps the set of squares the user has marked on the
// board. Marks are independent of occupancy and of move legality.
package annotate

import (
	"sort"

	"github.com/hailam/chessboard/internal/board"
)

// Set is a set of marked squares. The zero value is an empty set ready
// to use.
type Set struct {
	marked map[board.Square]struct{}
}

// New returns an empty set.
func New() *Set {
	return &Set{marked: make(map[board.Square]struct{})}
}

// Toggle marks sq if it is unmarked and unmarks it otherwise. It returns
// whether sq is marked afterwards.
func (s *Set) Toggle(sq board.Square) bool {
	if _, ok := s.marked[sq]; ok {
		delete(s.marked, sq)
		return false
	}
	if s.marked == nil {
		s.marked = make(map[board.Square]struct{})
	}
	s.marked[sq] = struct{}{}
	return true
}

// Clear removes every mark.
func (s *Set) Clear() {
	clear(s.marked)
}

// Contains reports whether sq is marked.
func (s *Set) Contains(sq board.Square) bool {
	_, ok := s.marked[sq]
	return ok
}

// Len returns the number of marked squares.
func (s *Set) Len() int {
	return len(s.marked)
}

// Squares returns a snapshot of the marked squares in row-major order.
// The slice is owned by the caller.
func (s *Set) Squares() []board.Square {
	out := make([]board.Square, 0, len(s.marked))
	for sq := range s.marked {
		out = append(out, sq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
