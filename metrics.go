package mzgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    putCounter   prometheus.Counter
//	    getHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordPut(duration time.Duration, err error) {
//	    p.putCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordPut is called after each put operation.
	// duration is the total time taken, err is nil if successful.
	RecordPut(duration time.Duration, err error)

	// RecordGet is called after each get operation.
	RecordGet(duration time.Duration, err error)

	// RecordHistogram is called after each score histogram computation.
	// identifications is the number of identifications processed,
	// duration is the time taken, err is nil if successful.
	RecordHistogram(identifications int, duration time.Duration, err error)

	// RecordExport is called after each export operation.
	// bytes is the size of the produced envelope.
	RecordExport(bytes int, duration time.Duration, err error)

	// RecordImport is called after each import operation.
	// bytes is the size of the consumed envelope.
	RecordImport(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPut(time.Duration, error)            {}
func (NoopMetricsCollector) RecordGet(time.Duration, error)            {}
func (NoopMetricsCollector) RecordHistogram(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordExport(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordImport(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PutCount                 atomic.Int64
	PutErrors                atomic.Int64
	PutTotalNanos            atomic.Int64
	GetCount                 atomic.Int64
	GetErrors                atomic.Int64
	GetTotalNanos            atomic.Int64
	HistogramCount           atomic.Int64
	HistogramErrors          atomic.Int64
	HistogramIdentifications atomic.Int64
	ExportCount              atomic.Int64
	ExportErrors             atomic.Int64
	ExportBytes              atomic.Int64
	ImportCount              atomic.Int64
	ImportErrors             atomic.Int64
	ImportBytes              atomic.Int64
}

// RecordPut implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPut(duration time.Duration, err error) {
	b.PutCount.Add(1)
	b.PutTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PutErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(duration time.Duration, err error) {
	b.GetCount.Add(1)
	b.GetTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GetErrors.Add(1)
	}
}

// RecordHistogram implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHistogram(identifications int, duration time.Duration, err error) {
	b.HistogramCount.Add(1)
	b.HistogramIdentifications.Add(int64(identifications))
	if err != nil {
		b.HistogramErrors.Add(1)
	}
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(bytes int, duration time.Duration, err error) {
	b.ExportCount.Add(1)
	b.ExportBytes.Add(int64(bytes))
	if err != nil {
		b.ExportErrors.Add(1)
	}
}

// RecordImport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordImport(bytes int, duration time.Duration, err error) {
	b.ImportCount.Add(1)
	b.ImportBytes.Add(int64(bytes))
	if err != nil {
		b.ImportErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PutCount:                 b.PutCount.Load(),
		PutErrors:                b.PutErrors.Load(),
		PutAvgNanos:              b.getAvgPutNanos(),
		GetCount:                 b.GetCount.Load(),
		GetErrors:                b.GetErrors.Load(),
		GetAvgNanos:              b.getAvgGetNanos(),
		HistogramCount:           b.HistogramCount.Load(),
		HistogramErrors:          b.HistogramErrors.Load(),
		HistogramIdentifications: b.HistogramIdentifications.Load(),
		ExportCount:              b.ExportCount.Load(),
		ExportErrors:             b.ExportErrors.Load(),
		ExportBytes:              b.ExportBytes.Load(),
		ImportCount:              b.ImportCount.Load(),
		ImportErrors:             b.ImportErrors.Load(),
		ImportBytes:              b.ImportBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgPutNanos() int64 {
	count := b.PutCount.Load()
	if count == 0 {
		return 0
	}
	return b.PutTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgGetNanos() int64 {
	count := b.GetCount.Load()
	if count == 0 {
		return 0
	}
	return b.GetTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PutCount                 int64
	PutErrors                int64
	PutAvgNanos              int64
	GetCount                 int64
	GetErrors                int64
	GetAvgNanos              int64
	HistogramCount           int64
	HistogramErrors          int64
	HistogramIdentifications int64
	ExportCount              int64
	ExportErrors             int64
	ExportBytes              int64
	ImportCount              int64
	ImportErrors             int64
	ImportBytes              int64
}
