// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pastelpanda/chameleon/internal/models"
)

// State is the lifecycle position of the store
type State string

const (
	StateUninitialized State = "uninitialized"
	StateModeRestored  State = "mode-restored"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateRefreshing    State = "refreshing"
)

// Fetcher retrieves the current theme record from the configuration source
type Fetcher interface {
	Current(ctx context.Context) (*models.ThemeRecord, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface
type FetcherFunc func(ctx context.Context) (*models.ThemeRecord, error)

func (f FetcherFunc) Current(ctx context.Context) (*models.ThemeRecord, error) {
	return f(ctx)
}

// ModeStore is the single durable slot for the display mode preference
type ModeStore interface {
	Mode() (models.DisplayMode, error)
	SetMode(models.DisplayMode) error
}

// Applier receives resolved publishes; the token publisher satisfies this
type Applier interface {
	Apply(record *models.ThemeRecord, mode models.DisplayMode)
}

// Store drives the publisher from the persisted display mode and the
// periodically refreshed theme record. All operations are commands on one
// channel, processed by a single goroutine, so a toggle and a timer
// refresh can never interleave. The persisted mode is re-read on every
// command; only Toggle writes it.
type Store struct {
	fetcher  Fetcher
	modes    ModeStore
	applier  Applier
	interval time.Duration
	log      zerolog.Logger

	mu     sync.RWMutex
	state  State
	record *models.ThemeRecord

	commands chan command
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	started  bool
}

type commandKind int

const (
	cmdRefresh commandKind = iota
	cmdToggle
)

type command struct {
	kind  commandKind
	reply chan commandResult
}

type commandResult struct {
	mode models.DisplayMode
	err  error
}

// New builds a store. The interval is the silent refresh period.
func New(fetcher Fetcher, modes ModeStore, applier Applier, interval time.Duration, log zerolog.Logger) *Store {
	return &Store{
		fetcher:  fetcher,
		modes:    modes,
		applier:  applier,
		interval: interval,
		log:      log,
		state:    StateUninitialized,
		commands: make(chan command),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start restores the persisted display mode and publishes the default
// palette under it before any network activity, then begins loading and
// the periodic refresh loop. Returns an error if already started.
func (s *Store) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("store already started")
	}
	s.started = true
	s.mu.Unlock()

	mode := s.persistedMode()
	s.applier.Apply(nil, mode)
	s.setState(StateModeRestored)
	s.log.Debug().Str("mode", string(mode)).Msg("display mode restored")

	go s.run(ctx)
	return nil
}

// Stop cancels the refresh loop and waits for it to drain
func (s *Store) Stop() {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return
	}
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// Toggle flips the display mode, persists it, and republishes the current
// record under the new mode. This is the only path that changes the
// persisted mode. Blocks until the command has been processed.
func (s *Store) Toggle() (models.DisplayMode, error) {
	return s.send(cmdToggle)
}

// RefreshNow fetches and republishes immediately, bypassing the wait
// interval. Used after a save so edits show up without delay.
func (s *Store) RefreshNow() error {
	_, err := s.send(cmdRefresh)
	return err
}

// State returns the current lifecycle state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Record returns the last successfully fetched theme record, or nil
func (s *Store) Record() *models.ThemeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// Mode reads the persisted display mode preference
func (s *Store) Mode() models.DisplayMode {
	return s.persistedMode()
}

func (s *Store) send(kind commandKind) (models.DisplayMode, error) {
	cmd := command{kind: kind, reply: make(chan commandResult, 1)}
	select {
	case s.commands <- cmd:
	case <-s.done:
		return models.ModeLight, fmt.Errorf("store is stopped")
	}
	select {
	case result := <-cmd.reply:
		return result.mode, result.err
	case <-s.done:
		return models.ModeLight, fmt.Errorf("store is stopped")
	}
}

// run is the single goroutine that owns every publish after startup
func (s *Store) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.setState(StateLoading)
	if err := s.refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("initial theme load failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.setState(StateRefreshing)
			if err := s.refresh(ctx); err != nil {
				s.log.Warn().Err(err).Msg("scheduled theme refresh failed")
			}
		case cmd := <-s.commands:
			switch cmd.kind {
			case cmdRefresh:
				s.setState(StateRefreshing)
				err := s.refresh(ctx)
				cmd.reply <- commandResult{mode: s.persistedMode(), err: err}
			case cmdToggle:
				mode, err := s.toggle()
				cmd.reply <- commandResult{mode: mode, err: err}
			}
		}
	}
}

// refresh re-reads the persisted mode, fetches the record and republishes.
// The mode is read fresh every time so a toggle made while a refresh was
// pending is never clobbered. On fetch failure the previous record and
// state are retained.
func (s *Store) refresh(ctx context.Context) error {
	mode := s.persistedMode()

	record, err := s.fetcher.Current(ctx)
	if err != nil {
		s.restorePreviousState()
		return fmt.Errorf("fetch current theme: %w", err)
	}

	s.mu.Lock()
	s.record = record
	s.mu.Unlock()

	s.applier.Apply(record, mode)
	s.setState(StateReady)
	return nil
}

func (s *Store) toggle() (models.DisplayMode, error) {
	mode := s.persistedMode()
	next := mode.Toggle()

	if err := s.modes.SetMode(next); err != nil {
		return mode, fmt.Errorf("persist display mode: %w", err)
	}

	s.applier.Apply(s.Record(), next)
	s.log.Info().Str("mode", string(next)).Msg("display mode toggled")
	return next, nil
}

// persistedMode reads the durable slot, defaulting to light when the slot
// is absent or unreadable
func (s *Store) persistedMode() models.DisplayMode {
	mode, err := s.modes.Mode()
	if err != nil {
		s.log.Warn().Err(err).Msg("reading display mode preference failed; using light")
		return models.ModeLight
	}
	return mode
}

func (s *Store) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// restorePreviousState drops back to ready when a record is held, or to
// mode-restored when the first load has not succeeded yet
func (s *Store) restorePreviousState() {
	s.mu.Lock()
	if s.record != nil {
		s.state = StateReady
	} else {
		s.state = StateModeRestored
	}
	s.mu.Unlock()
}
