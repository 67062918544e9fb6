package mzgo

import (
	"context"
	"runtime"
	"time"

	"github.com/hupe1980/mzgo/frame"
	"golang.org/x/sync/errgroup"
)

// ScoreHistograms computes the score histogram of every identification of a
// spectrum, one histogram per identification, computed concurrently.
//
// The returned slice is aligned with the spectrum's identifications. Entries
// for identifications without a PSM table (or with an empty one) are nil.
func (s *Store) ScoreHistograms(ctx context.Context, searchUUID, msRunName, spectrumID string) ([]*frame.Histogram, error) {
	start := time.Now()
	histograms, identifications, err := s.scoreHistograms(ctx, searchUUID, msRunName, spectrumID)
	duration := time.Since(start)
	s.metrics.RecordHistogram(identifications, duration, err)
	s.logger.LogHistograms(ctx, spectrumID, identifications, err)
	return histograms, err
}

func (s *Store) scoreHistograms(ctx context.Context, searchUUID, msRunName, spectrumID string) ([]*frame.Histogram, int, error) {
	spectrum, err := s.getSpectrum(searchUUID, msRunName, spectrumID)
	if err != nil {
		return nil, 0, err
	}

	idents := spectrum.Identifications()
	histograms := make([]*frame.Histogram, len(idents))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, ident := range idents {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if h, ok := ident.ScoreHistogram(); ok {
				histograms[i] = &h
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, len(idents), err
	}

	return histograms, len(idents), nil
}
