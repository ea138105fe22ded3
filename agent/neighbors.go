package agent

import "github.com/JoelSalzesson/ArNavNav/navobj"

// neighborEntry pairs a squared surface distance with the object it was
// computed for.
type neighborEntry struct {
	distSq float64
	obj    navobj.Object
}

// neighborSet is a bounded top-k-nearest container, kept sorted ascending
// by squared surface distance, size at most maxNeighbors. Ties are broken
// by insertion order, matching the "no external ordering guarantee" clause.
type neighborSet struct {
	entries []neighborEntry
}

func (s *neighborSet) clear() {
	s.entries = s.entries[:0]
}

// insert adds (distSq, obj) in sorted position, then drops the worst entry
// if the set now exceeds max.
func (s *neighborSet) insert(distSq float64, obj navobj.Object, max int) {
	i := 0
	for i < len(s.entries) && s.entries[i].distSq <= distSq {
		i++
	}
	s.entries = append(s.entries, neighborEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = neighborEntry{distSq: distSq, obj: obj}

	if len(s.entries) > max {
		s.entries = s.entries[:max]
	}
}

func (s *neighborSet) full(max int) bool {
	return len(s.entries) >= max
}

// worstKey returns the largest (last) squared distance currently held.
// Precondition: the set is non-empty.
func (s *neighborSet) worstKey() float64 {
	return s.entries[len(s.entries)-1].distSq
}

// Len returns the number of neighbors currently held.
func (s *neighborSet) Len() int {
	return len(s.entries)
}

// At returns the object at sorted index i (0 = nearest).
func (s *neighborSet) At(i int) navobj.Object {
	return s.entries[i].obj
}
