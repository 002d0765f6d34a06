// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pastelpanda/chameleon/internal/models"
)

// fakeFetcher serves a fixed record, or an error when told to fail
type fakeFetcher struct {
	mu     sync.Mutex
	record *models.ThemeRecord
	err    error
	calls  int
}

func (f *fakeFetcher) Current(ctx context.Context) (*models.ThemeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

func (f *fakeFetcher) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// memoryModeStore keeps the preference in memory
type memoryModeStore struct {
	mu   sync.Mutex
	mode models.DisplayMode
	err  error
}

func (m *memoryModeStore) Mode() (models.DisplayMode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.ModeLight, m.err
	}
	if m.mode == "" {
		return models.ModeLight, nil
	}
	return m.mode, nil
}

func (m *memoryModeStore) SetMode(mode models.DisplayMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.mode = mode
	return nil
}

// recordingApplier remembers every publish
type recordingApplier struct {
	mu      sync.Mutex
	applies []appliedCall
}

type appliedCall struct {
	record *models.ThemeRecord
	mode   models.DisplayMode
}

func (r *recordingApplier) Apply(record *models.ThemeRecord, mode models.DisplayMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applies = append(r.applies, appliedCall{record: record, mode: mode})
}

func (r *recordingApplier) calls() []appliedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]appliedCall, len(r.applies))
	copy(out, r.applies)
	return out
}

func (r *recordingApplier) last() appliedCall {
	calls := r.calls()
	if len(calls) == 0 {
		return appliedCall{}
	}
	return calls[len(calls)-1]
}

func newTestStore(fetcher Fetcher, modes ModeStore, applier Applier) *Store {
	return New(fetcher, modes, applier, time.Hour, zerolog.Nop())
}

func startedStore(t *testing.T, fetcher Fetcher, modes ModeStore, applier Applier) *Store {
	t.Helper()
	s := newTestStore(fetcher, modes, applier)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(s.Stop)
	return s
}

func testThemeRecord() *models.ThemeRecord {
	return models.NewDefaultCustomization("test").Record()
}

func TestStartRestoresModeBeforeFetch(t *testing.T) {
	fetcher := &fakeFetcher{record: testThemeRecord()}
	modes := &memoryModeStore{mode: models.ModeDark}
	applier := &recordingApplier{}

	s := startedStore(t, fetcher, modes, applier)

	// The first publish happens inside Start, before any fetch: nil record
	// under the persisted mode
	calls := applier.calls()
	if len(calls) == 0 {
		t.Fatal("Expected a publish during Start")
	}
	if calls[0].record != nil {
		t.Error("Expected the pre-fetch publish to carry no record")
	}
	if calls[0].mode != models.ModeDark {
		t.Errorf("Expected persisted dark mode, got %s", calls[0].mode)
	}

	if err := s.RefreshNow(); err != nil {
		t.Fatalf("RefreshNow failed: %v", err)
	}
	if s.Record() == nil {
		t.Error("Expected a record after refresh")
	}
}

func TestStartTwiceFails(t *testing.T) {
	fetcher := &fakeFetcher{record: testThemeRecord()}
	s := startedStore(t, fetcher, &memoryModeStore{}, &recordingApplier{})

	if err := s.Start(context.Background()); err == nil {
		t.Error("Expected second Start to fail")
	}
}

func TestStartDefaultsToLightMode(t *testing.T) {
	applier := &recordingApplier{}
	startedStore(t, &fakeFetcher{record: testThemeRecord()}, &memoryModeStore{}, applier)

	if applier.calls()[0].mode != models.ModeLight {
		t.Errorf("Expected light mode without a stored preference, got %s", applier.calls()[0].mode)
	}
}

func TestStartFallsBackToLightOnModeError(t *testing.T) {
	applier := &recordingApplier{}
	modes := &memoryModeStore{err: errors.New("disk gone")}
	startedStore(t, &fakeFetcher{record: testThemeRecord()}, modes, applier)

	if applier.calls()[0].mode != models.ModeLight {
		t.Errorf("Expected light mode on preference error, got %s", applier.calls()[0].mode)
	}
}

func TestRefreshNowPublishesRecord(t *testing.T) {
	record := testThemeRecord()
	fetcher := &fakeFetcher{record: record}
	applier := &recordingApplier{}
	s := startedStore(t, fetcher, &memoryModeStore{}, applier)

	if err := s.RefreshNow(); err != nil {
		t.Fatalf("RefreshNow failed: %v", err)
	}

	if s.State() != StateReady {
		t.Errorf("Expected ready state, got %s", s.State())
	}
	last := applier.last()
	if last.record != record {
		t.Error("Expected the fetched record published")
	}
}

func TestToggleFlipsAndPersists(t *testing.T) {
	modes := &memoryModeStore{}
	applier := &recordingApplier{}
	s := startedStore(t, &fakeFetcher{record: testThemeRecord()}, modes, applier)

	mode, err := s.Toggle()
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if mode != models.ModeDark {
		t.Errorf("Expected dark after first toggle, got %s", mode)
	}

	persisted, _ := modes.Mode()
	if persisted != models.ModeDark {
		t.Errorf("Expected dark persisted, got %s", persisted)
	}
	if applier.last().mode != models.ModeDark {
		t.Errorf("Expected republish under dark, got %s", applier.last().mode)
	}
}

func TestDoubleToggleRoundTrips(t *testing.T) {
	modes := &memoryModeStore{}
	s := startedStore(t, &fakeFetcher{record: testThemeRecord()}, modes, &recordingApplier{})

	if _, err := s.Toggle(); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	mode, err := s.Toggle()
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if mode != models.ModeLight {
		t.Errorf("Expected light after double toggle, got %s", mode)
	}
	persisted, _ := modes.Mode()
	if persisted != models.ModeLight {
		t.Errorf("Expected light persisted, got %s", persisted)
	}
}

func TestRefreshAfterTogglePreservesMode(t *testing.T) {
	modes := &memoryModeStore{}
	applier := &recordingApplier{}
	s := startedStore(t, &fakeFetcher{record: testThemeRecord()}, modes, applier)

	if _, err := s.Toggle(); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := s.RefreshNow(); err != nil {
		t.Fatalf("RefreshNow failed: %v", err)
	}

	// The refresh re-reads the persisted mode; it must not revert to light
	if applier.last().mode != models.ModeDark {
		t.Errorf("Expected refresh to publish under dark, got %s", applier.last().mode)
	}
}

func TestTogglePersistFailureKeepsMode(t *testing.T) {
	modes := &memoryModeStore{}
	s := startedStore(t, &fakeFetcher{record: testThemeRecord()}, modes, &recordingApplier{})

	modes.mu.Lock()
	modes.err = errors.New("disk full")
	modes.mu.Unlock()

	if _, err := s.Toggle(); err == nil {
		t.Error("Expected toggle to surface the persistence error")
	}

	modes.mu.Lock()
	modes.err = nil
	stored := modes.mode
	modes.mu.Unlock()
	if stored != "" {
		t.Errorf("Expected no mode written on failure, got %s", stored)
	}
}

func TestFetchFailureKeepsPreviousRecord(t *testing.T) {
	record := testThemeRecord()
	fetcher := &fakeFetcher{record: record}
	s := startedStore(t, fetcher, &memoryModeStore{}, &recordingApplier{})

	if err := s.RefreshNow(); err != nil {
		t.Fatalf("RefreshNow failed: %v", err)
	}

	fetcher.setError(errors.New("connection refused"))
	if err := s.RefreshNow(); err == nil {
		t.Error("Expected refresh error to surface")
	}

	if s.Record() != record {
		t.Error("Expected the previous record retained after a failed fetch")
	}
	if s.State() != StateReady {
		t.Errorf("Expected state restored to ready, got %s", s.State())
	}
}

func TestFetchFailureBeforeFirstLoad(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	s := startedStore(t, fetcher, &memoryModeStore{}, &recordingApplier{})

	if err := s.RefreshNow(); err == nil {
		t.Error("Expected refresh error to surface")
	}
	if s.Record() != nil {
		t.Error("Expected no record before a successful load")
	}
	if s.State() != StateModeRestored {
		t.Errorf("Expected mode-restored state, got %s", s.State())
	}
}

func TestStoppedStoreRejectsCommands(t *testing.T) {
	s := newTestStore(&fakeFetcher{record: testThemeRecord()}, &memoryModeStore{}, &recordingApplier{})
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Stop()

	if err := s.RefreshNow(); err == nil {
		t.Error("Expected RefreshNow to fail after Stop")
	}
	if _, err := s.Toggle(); err == nil {
		t.Error("Expected Toggle to fail after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s := newTestStore(&fakeFetcher{record: testThemeRecord()}, &memoryModeStore{}, &recordingApplier{})
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Stop()
	s.Stop()
}

func TestStopBeforeStartIsNoOp(t *testing.T) {
	s := newTestStore(&fakeFetcher{}, &memoryModeStore{}, &recordingApplier{})
	s.Stop()
}
