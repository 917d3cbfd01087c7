package backend

import "sync"

// faultSet holds one-shot injected errors keyed by operation. A fault fires
// on the next call of its operation and is then cleared.
type faultSet struct {
	mu    sync.Mutex
	armed map[Op]error
}

func (f *faultSet) take(op Op) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err, ok := f.armed[op]
	if !ok {
		return nil
	}
	delete(f.armed, op)
	return err
}

// InjectFault arms a one-shot error for the given operation. The next call of
// that operation fails with err before touching any record store; subsequent
// calls behave normally.
func (s *Service) InjectFault(op Op, err error) {
	s.faults.mu.Lock()
	defer s.faults.mu.Unlock()
	if s.faults.armed == nil {
		s.faults.armed = make(map[Op]error)
	}
	s.faults.armed[op] = err
}
