package mzgo

// Close releases the identification tables owned by stored spectra and marks
// the store closed. Operations on a closed store return ErrClosed.
//
// Close is idempotent and safe on a nil receiver.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for _, spectrum := range s.spectra {
		spectrum.Release()
	}

	s.searches = nil
	s.runs = nil
	s.spectra = nil

	return nil
}
