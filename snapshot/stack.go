package snapshot

const (
	STACK_LIMIT = 16 // Maximum checkpoint depth
)

// Stack is a bounded stack of captured states.
type Stack struct {
	Data []*State
}

func (s *Stack) Push(st *State) (ok bool) {
	if s.Full() {
		return
	}
	s.Data = append(s.Data, st)
	return true
}

func (s *Stack) Pop() (st *State, ok bool) {
	st, ok = s.Peek()
	if ok {
		s.Data[len(s.Data)-1] = nil
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) == STACK_LIMIT
}

func (s *Stack) Peek() (st *State, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	clear(s.Data)
	s.Data = s.Data[:0]
}
