package mzgo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hupe1980/mzgo/codec"
	"github.com/hupe1980/mzgo/results"
)

const (
	kindSearch   = "search"
	kindMSRun    = "ms_run"
	kindSpectrum = "spectrum"
)

// exportEnvelope is the self-describing wrapper around an exported entity.
// The envelope itself is always encoded with encoding/json so that the entity
// codec can be resolved before the payload is touched.
type exportEnvelope struct {
	Codec  string          `json:"codec"`
	Kind   string          `json:"kind"`
	Entity json.RawMessage `json:"entity"`
}

// ExportSearch serializes a registered search through the configured codec.
func (s *Store) ExportSearch(ctx context.Context, searchUUID string) ([]byte, error) {
	start := time.Now()
	data, err := s.exportSearch(searchUUID)
	duration := time.Since(start)
	s.metrics.RecordExport(len(data), duration, err)
	s.logger.LogExport(ctx, "search", searchUUID, len(data), err)
	return data, err
}

func (s *Store) exportSearch(searchUUID string) ([]byte, error) {
	search, err := s.getSearch(searchUUID)
	if err != nil {
		return nil, err
	}
	return s.sealEnvelope(kindSearch, search)
}

// ExportMSRun serializes a registered MS run through the configured codec.
func (s *Store) ExportMSRun(ctx context.Context, searchUUID, msRunName string) ([]byte, error) {
	start := time.Now()
	data, err := s.exportMSRun(searchUUID, msRunName)
	duration := time.Since(start)
	s.metrics.RecordExport(len(data), duration, err)
	s.logger.LogExport(ctx, "ms_run", msRunName, len(data), err)
	return data, err
}

func (s *Store) exportMSRun(searchUUID, msRunName string) ([]byte, error) {
	run, err := s.getMSRun(searchUUID, msRunName)
	if err != nil {
		return nil, err
	}
	return s.sealEnvelope(kindMSRun, run)
}

// ExportSpectrum serializes a registered spectrum through the configured
// codec, identification tables included.
func (s *Store) ExportSpectrum(ctx context.Context, searchUUID, msRunName, spectrumID string) ([]byte, error) {
	start := time.Now()
	data, err := s.exportSpectrum(searchUUID, msRunName, spectrumID)
	duration := time.Since(start)
	s.metrics.RecordExport(len(data), duration, err)
	s.logger.LogExport(ctx, "spectrum", spectrumID, len(data), err)
	return data, err
}

func (s *Store) exportSpectrum(searchUUID, msRunName, spectrumID string) ([]byte, error) {
	spectrum, err := s.getSpectrum(searchUUID, msRunName, spectrumID)
	if err != nil {
		return nil, err
	}
	return s.sealEnvelope(kindSpectrum, spectrum)
}

func (s *Store) sealEnvelope(kind string, entity any) ([]byte, error) {
	payload, err := s.codec.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("mzgo: failed to encode %s: %w", kind, err)
	}

	data, err := json.Marshal(exportEnvelope{
		Codec:  s.codec.Name(),
		Kind:   kind,
		Entity: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("mzgo: failed to encode envelope: %w", err)
	}

	return data, nil
}

func openEnvelope(data []byte, kind string) ([]byte, codec.Codec, error) {
	var env exportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, fmt.Errorf("mzgo: failed to decode envelope: %w", err)
	}
	if env.Kind != kind {
		return nil, nil, fmt.Errorf("mzgo: envelope holds %q, want %q", env.Kind, kind)
	}

	c, ok := codec.ByName(env.Codec)
	if !ok {
		return nil, nil, fmt.Errorf("mzgo: unknown codec %q", env.Codec)
	}

	return env.Entity, c, nil
}

// ImportSearch decodes an exported search and registers it.
//
// The codec is resolved from the envelope, so an export produced with a
// differently configured store imports cleanly.
func (s *Store) ImportSearch(ctx context.Context, data []byte) (*results.Search, error) {
	start := time.Now()
	search, err := s.importSearch(data)
	duration := time.Since(start)
	s.metrics.RecordImport(len(data), duration, err)

	var key string
	if search != nil {
		key = search.SearchUUID()
	}
	s.logger.LogImport(ctx, "search", key, len(data), err)

	return search, err
}

func (s *Store) importSearch(data []byte) (*results.Search, error) {
	payload, c, err := openEnvelope(data, kindSearch)
	if err != nil {
		return nil, err
	}

	var search results.Search
	if err := c.Unmarshal(payload, &search); err != nil {
		return nil, fmt.Errorf("mzgo: failed to decode search: %w", err)
	}
	if err := s.putSearch(&search); err != nil {
		return nil, err
	}

	return &search, nil
}

// ImportMSRun decodes an exported MS run and registers it under its search.
func (s *Store) ImportMSRun(ctx context.Context, data []byte) (*results.MSRun, error) {
	start := time.Now()
	run, err := s.importMSRun(data)
	duration := time.Since(start)
	s.metrics.RecordImport(len(data), duration, err)

	var key string
	if run != nil {
		key = run.MSRunName()
	}
	s.logger.LogImport(ctx, "ms_run", key, len(data), err)

	return run, err
}

func (s *Store) importMSRun(data []byte) (*results.MSRun, error) {
	payload, c, err := openEnvelope(data, kindMSRun)
	if err != nil {
		return nil, err
	}

	var run results.MSRun
	if err := c.Unmarshal(payload, &run); err != nil {
		return nil, fmt.Errorf("mzgo: failed to decode ms run: %w", err)
	}
	if err := s.putMSRun(&run); err != nil {
		return nil, err
	}

	return &run, nil
}

// ImportSpectrum decodes an exported spectrum and registers it under its MS run.
func (s *Store) ImportSpectrum(ctx context.Context, data []byte) (*results.Spectrum, error) {
	start := time.Now()
	spectrum, err := s.importSpectrum(data)
	duration := time.Since(start)
	s.metrics.RecordImport(len(data), duration, err)

	var key string
	if spectrum != nil {
		key = spectrum.SpectrumID()
	}
	s.logger.LogImport(ctx, "spectrum", key, len(data), err)

	return spectrum, err
}

func (s *Store) importSpectrum(data []byte) (*results.Spectrum, error) {
	payload, c, err := openEnvelope(data, kindSpectrum)
	if err != nil {
		return nil, err
	}

	var spectrum results.Spectrum
	if err := c.Unmarshal(payload, &spectrum); err != nil {
		return nil, fmt.Errorf("mzgo: failed to decode spectrum: %w", err)
	}
	if err := s.putSpectrum(&spectrum); err != nil {
		// Registration failed, so the store never took ownership of the
		// decoded identification tables.
		spectrum.Release()
		return nil, err
	}

	return &spectrum, nil
}
