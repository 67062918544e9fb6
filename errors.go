package mzgo

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists is returned when an entity with the same key is already registered.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnknownSearch is returned when an entity references a search that is not registered.
	ErrUnknownSearch = errors.New("unknown search")

	// ErrUnknownMSRun is returned when a spectrum references an MS run that is not registered.
	ErrUnknownMSRun = errors.New("unknown ms run")
)

// ErrInvalidSearchUUID indicates a search UUID that does not parse as an RFC 4122 UUID.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSearchUUID struct {
	UUID  string
	cause error
}

func (e *ErrInvalidSearchUUID) Error() string {
	return fmt.Sprintf("invalid search UUID: %q", e.UUID)
}

func (e *ErrInvalidSearchUUID) Unwrap() error { return e.cause }
