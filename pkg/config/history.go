package config

import (
	"errors"
	"slices"

	"github.com/orx/orx-sub008/pkg/types"
)

// record appends a top-level load to the history when tracking is on.
func (s *Store) record(name string) {
	if s.historyOn && !s.historySuspended {
		s.history = append(s.history, name)
	}
}

// HistoryEnabled reports whether top-level loads are being recorded.
func (s *Store) HistoryEnabled() bool { return s.historyOn }

// History returns the files loaded since Init, in load order.
func (s *Store) History() []string {
	return slices.Clone(s.history)
}

// ReloadHistory clears the store, then loads the main file and every file in
// the history again. It stops at the first failure; sections loaded until
// then are kept.
func (s *Store) ReloadHistory() error {
	if !s.ready {
		return types.ErrNotReady
	}
	if !s.historyOn {
		return types.ErrHistoryDisabled
	}

	s.historySuspended = true
	defer func() { s.historySuspended = false }()

	if err := s.Clear(); err != nil {
		return err
	}
	main := s.GetMainFileName()
	if err := s.Load(main); err != nil && !errors.Is(err, types.ErrNotFound) {
		return err
	}
	for _, name := range s.history {
		if err := s.Load(name); err != nil {
			s.log.Warn("history reload stopped", "file", name, "error", err)
			return err
		}
	}
	s.log.Info("config history reloaded", "files", len(s.history))
	return nil
}
