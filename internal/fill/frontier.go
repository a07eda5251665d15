package fill

// frontier is the stack of pending (u, v) seeds awaiting expansion.
// Two parallel slices keep the entries unboxed; the backing storage is
// kept across calls and clear only resets the length, so a busy filler
// stops allocating once the stacks have grown to their working size.
type frontier struct {
	us []int64
	vs []int64
}

func (s *frontier) push(u, v int64) {
	s.us = append(s.us, u)
	s.vs = append(s.vs, v)
}

// pop removes and returns the most recently pushed seed. Popping an
// empty frontier is an invariant violation and panics.
func (s *frontier) pop() (u, v int64) {
	n := len(s.us)
	if n == 0 {
		panic("fill: pop from empty frontier")
	}
	u, v = s.us[n-1], s.vs[n-1]
	s.us = s.us[:n-1]
	s.vs = s.vs[:n-1]
	return u, v
}

func (s *frontier) empty() bool {
	return len(s.us) == 0
}

func (s *frontier) clear() {
	s.us = s.us[:0]
	s.vs = s.vs[:0]
}
