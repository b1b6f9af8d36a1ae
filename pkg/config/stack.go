package config

import "github.com/orx/orx-sub008/pkg/types"

// PushSection saves the current section and selects name. On failure the
// stack and current section are left unchanged.
func (s *Store) PushSection(name string) error {
	s.stack = append(s.stack, s.current)
	if err := s.SelectSection(name); err != nil {
		s.stack = s.stack[:len(s.stack)-1]
		return err
	}
	return nil
}

// PopSection restores the section saved by the matching PushSection.
func (s *Store) PopSection() error {
	n := len(s.stack)
	if n == 0 {
		s.log.Warn("pop on empty section stack")
		return types.ErrStackEmpty
	}
	s.current = s.stack[n-1]
	s.stack = s.stack[:n-1]
	return nil
}

// StackDepth returns the number of saved sections.
func (s *Store) StackDepth() int { return len(s.stack) }

// Scope restores the section stack to its state before Enter.
//
//	scope, err := store.Enter("Player")
//	if err != nil {
//		return err
//	}
//	defer scope.Close()
type Scope struct {
	store *Store
	depth int
	done  bool
}

// Enter pushes name and returns a Scope whose Close pops it again.
func (s *Store) Enter(name string) (*Scope, error) {
	depth := len(s.stack)
	if err := s.PushSection(name); err != nil {
		return nil, err
	}
	return &Scope{store: s, depth: depth}, nil
}

// Close pops every section pushed since Enter. Further calls do nothing.
func (sc *Scope) Close() error {
	if sc == nil || sc.done {
		return nil
	}
	sc.done = true
	for len(sc.store.stack) > sc.depth {
		if err := sc.store.PopSection(); err != nil {
			return err
		}
	}
	return nil
}
