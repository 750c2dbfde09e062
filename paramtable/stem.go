package paramtable

import "strconv"

// idStem hands out generated case ids (stem1, stem2, ...) while never
// reusing an id the caller assigned by hand.
type idStem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

// newStem creates an allocator over the given taken-id set. A nil set
// means every id is available.
func newStem(stem string, taken map[string]struct{}) *idStem {
	return &idStem{taken: taken, stem: stem}
}

// Next returns the lowest-numbered free id and claims it.
func (s *idStem) Next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++
		id := s.stem + strconv.Itoa(s.last)

		if _, clash := s.taken[id]; !clash {
			s.taken[id] = struct{}{}
			return id
		}
	}
}
