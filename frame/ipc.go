package frame

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// MarshalRecord encodes rec as an Arrow IPC stream. rec must be
// non-nil.
func MarshalRecord(rec arrow.Record) ([]byte, error) {
	var buf bytes.Buffer

	w := ipc.NewWriter(&buf, ipc.WithSchema(rec.Schema()))
	if err := w.Write(rec); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("frame: failed to encode record: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("frame: failed to encode record: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalRecord decodes an Arrow IPC stream produced by
// MarshalRecord. The returned record is retained and must be released
// by the caller.
func UnmarshalRecord(data []byte) (arrow.Record, error) {
	r, err := ipc.NewReader(bytes.NewReader(data), ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, fmt.Errorf("frame: failed to decode record: %w", err)
	}
	defer r.Release()

	if !r.Next() {
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("frame: failed to decode record: %w", err)
		}

		return nil, errors.New("frame: record stream is empty")
	}

	rec := r.Record()
	rec.Retain()

	return rec, nil
}
