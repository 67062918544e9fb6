package mzgo

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/mzgo/codec"
	"github.com/hupe1980/mzgo/results"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("store is closed")
)

// NewSearchUUID returns a fresh random UUID suitable as a search key.
func NewSearchUUID() string {
	return uuid.NewString()
}

type runKey struct {
	searchUUID string
	msRunName  string
}

type spectrumKey struct {
	searchUUID string
	msRunName  string
	spectrumID string
}

// Store is an in-memory registry of search results with hierarchical keys.
//
// Entities are registered top-down: a search before its MS runs, an MS run
// before its spectra. Stored spectra own their identifications' Arrow tables;
// Close releases them.
type Store struct {
	mu       sync.RWMutex
	closed   bool
	searches map[string]*results.Search
	runs     map[runKey]*results.MSRun
	spectra  map[spectrumKey]*results.Spectrum
	codec    codec.Codec
	metrics  MetricsCollector
	logger   *Logger
}

// New creates an empty Store.
func New(optFns ...Option) *Store {
	opts := applyOptions(optFns)

	return &Store{
		searches: make(map[string]*results.Search),
		runs:     make(map[runKey]*results.MSRun),
		spectra:  make(map[spectrumKey]*results.Spectrum),
		codec:    opts.codec,
		metrics:  opts.metricsCollector,
		logger:   opts.logger,
	}
}

// PutSearch registers a search.
//
// The search UUID must parse as an RFC 4122 UUID and must not be registered yet.
func (s *Store) PutSearch(ctx context.Context, search *results.Search) error {
	start := time.Now()
	err := s.putSearch(search)
	duration := time.Since(start)
	s.metrics.RecordPut(duration, err)
	s.logger.LogPut(ctx, "search", search.SearchUUID(), err)
	return err
}

func (s *Store) putSearch(search *results.Search) error {
	if _, err := uuid.Parse(search.SearchUUID()); err != nil {
		return &ErrInvalidSearchUUID{UUID: search.SearchUUID(), cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if _, ok := s.searches[search.SearchUUID()]; ok {
		return fmt.Errorf("mzgo: search %q: %w", search.SearchUUID(), ErrAlreadyExists)
	}

	s.searches[search.SearchUUID()] = search

	return nil
}

// PutMSRun registers an MS run under its search.
//
// The parent search must already be registered.
func (s *Store) PutMSRun(ctx context.Context, run *results.MSRun) error {
	start := time.Now()
	err := s.putMSRun(run)
	duration := time.Since(start)
	s.metrics.RecordPut(duration, err)
	s.logger.LogPut(ctx, "ms_run", run.MSRunName(), err)
	return err
}

func (s *Store) putMSRun(run *results.MSRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if _, ok := s.searches[run.SearchUUID()]; !ok {
		return fmt.Errorf("mzgo: search %q: %w", run.SearchUUID(), ErrUnknownSearch)
	}

	key := runKey{searchUUID: run.SearchUUID(), msRunName: run.MSRunName()}
	if _, ok := s.runs[key]; ok {
		return fmt.Errorf("mzgo: ms run %q: %w", run.MSRunName(), ErrAlreadyExists)
	}

	s.runs[key] = run

	return nil
}

// PutSpectrum registers a spectrum under its MS run.
//
// The parent search and MS run must already be registered. On success the
// store takes ownership of the spectrum's identification tables and releases
// them on Close; on error ownership stays with the caller.
func (s *Store) PutSpectrum(ctx context.Context, spectrum *results.Spectrum) error {
	start := time.Now()
	err := s.putSpectrum(spectrum)
	duration := time.Since(start)
	s.metrics.RecordPut(duration, err)
	s.logger.LogPut(ctx, "spectrum", spectrum.SpectrumID(), err)
	return err
}

func (s *Store) putSpectrum(spectrum *results.Spectrum) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if _, ok := s.searches[spectrum.SearchUUID()]; !ok {
		return fmt.Errorf("mzgo: search %q: %w", spectrum.SearchUUID(), ErrUnknownSearch)
	}
	if _, ok := s.runs[runKey{searchUUID: spectrum.SearchUUID(), msRunName: spectrum.MSRunName()}]; !ok {
		return fmt.Errorf("mzgo: ms run %q: %w", spectrum.MSRunName(), ErrUnknownMSRun)
	}

	key := spectrumKey{
		searchUUID: spectrum.SearchUUID(),
		msRunName:  spectrum.MSRunName(),
		spectrumID: spectrum.SpectrumID(),
	}
	if _, ok := s.spectra[key]; ok {
		return fmt.Errorf("mzgo: spectrum %q: %w", spectrum.SpectrumID(), ErrAlreadyExists)
	}

	s.spectra[key] = spectrum

	return nil
}

// GetSearch retrieves a search by UUID.
func (s *Store) GetSearch(ctx context.Context, searchUUID string) (*results.Search, error) {
	start := time.Now()
	search, err := s.getSearch(searchUUID)
	duration := time.Since(start)
	s.metrics.RecordGet(duration, err)
	s.logger.LogGet(ctx, "search", searchUUID, err)
	return search, err
}

func (s *Store) getSearch(searchUUID string) (*results.Search, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	search, ok := s.searches[searchUUID]
	if !ok {
		return nil, fmt.Errorf("mzgo: search %q: %w", searchUUID, ErrNotFound)
	}

	return search, nil
}

// GetMSRun retrieves an MS run by search UUID and run name.
func (s *Store) GetMSRun(ctx context.Context, searchUUID, msRunName string) (*results.MSRun, error) {
	start := time.Now()
	run, err := s.getMSRun(searchUUID, msRunName)
	duration := time.Since(start)
	s.metrics.RecordGet(duration, err)
	s.logger.LogGet(ctx, "ms_run", msRunName, err)
	return run, err
}

func (s *Store) getMSRun(searchUUID, msRunName string) (*results.MSRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	run, ok := s.runs[runKey{searchUUID: searchUUID, msRunName: msRunName}]
	if !ok {
		return nil, fmt.Errorf("mzgo: ms run %q: %w", msRunName, ErrNotFound)
	}

	return run, nil
}

// GetSpectrum retrieves a spectrum by search UUID, run name, and spectrum ID.
func (s *Store) GetSpectrum(ctx context.Context, searchUUID, msRunName, spectrumID string) (*results.Spectrum, error) {
	start := time.Now()
	spectrum, err := s.getSpectrum(searchUUID, msRunName, spectrumID)
	duration := time.Since(start)
	s.metrics.RecordGet(duration, err)
	s.logger.LogGet(ctx, "spectrum", spectrumID, err)
	return spectrum, err
}

func (s *Store) getSpectrum(searchUUID, msRunName, spectrumID string) (*results.Spectrum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	spectrum, ok := s.spectra[spectrumKey{
		searchUUID: searchUUID,
		msRunName:  msRunName,
		spectrumID: spectrumID,
	}]
	if !ok {
		return nil, fmt.Errorf("mzgo: spectrum %q: %w", spectrumID, ErrNotFound)
	}

	return spectrum, nil
}

// SearchUUIDs returns the UUIDs of all registered searches in sorted order.
func (s *Store) SearchUUIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uuids := make([]string, 0, len(s.searches))
	for searchUUID := range s.searches {
		uuids = append(uuids, searchUUID)
	}
	slices.Sort(uuids)

	return uuids
}

// Spectra returns an iterator over the spectra of an MS run, in the order
// listed by the run's spectra IDs.
//
// Spectra are resolved lazily, one per step. Iteration stops after the first
// error: an unregistered run or spectrum yields ErrNotFound, a store closed
// mid-iteration yields ErrClosed.
//
// Example:
//
//	for spectrum, err := range store.Spectra(searchUUID, "run_1") {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    process(spectrum)
//	}
func (s *Store) Spectra(searchUUID, msRunName string) iter.Seq2[*results.Spectrum, error] {
	return func(yield func(*results.Spectrum, error) bool) {
		run, err := s.getMSRun(searchUUID, msRunName)
		if err != nil {
			yield(nil, err)
			return
		}

		for _, spectrumID := range run.SpectraIDs() {
			spectrum, err := s.getSpectrum(searchUUID, msRunName, spectrumID)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(spectrum, nil) {
				return
			}
		}
	}
}

// StoreStats is a snapshot of entity counts.
type StoreStats struct {
	Searches        int
	MSRuns          int
	Spectra         int
	Identifications int
}

// Stats returns a snapshot of entity counts.
func (s *Store) Stats() StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := StoreStats{
		Searches: len(s.searches),
		MSRuns:   len(s.runs),
		Spectra:  len(s.spectra),
	}
	for _, spectrum := range s.spectra {
		stats.Identifications += len(spectrum.Identifications())
	}

	return stats
}
