package ranks

// stringSet is a set of strings that remembers insertion order.
// Resolution walks these sets, so iteration order must be stable for a
// fixed sequence of edits.
type stringSet struct {
	order []string
	index map[string]struct{}
}

func newStringSet() *stringSet {
	return &stringSet{
		index: make(map[string]struct{}),
	}
}

func (s *stringSet) add(value string) bool {
	if _, ok := s.index[value]; ok {
		return false
	}

	s.index[value] = struct{}{}
	s.order = append(s.order, value)
	return true
}

func (s *stringSet) remove(value string) bool {
	if _, ok := s.index[value]; !ok {
		return false
	}

	delete(s.index, value)
	for i, v := range s.order {
		if v == value {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *stringSet) contains(value string) bool {
	_, ok := s.index[value]
	return ok
}

func (s *stringSet) values() []string {
	values := make([]string, len(s.order))
	copy(values, s.order)
	return values
}

func (s *stringSet) len() int {
	return len(s.order)
}

func (s *stringSet) clear() {
	s.order = nil
	s.index = make(map[string]struct{})
}
