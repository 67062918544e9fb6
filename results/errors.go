package results

import "fmt"

// ErrPeakLengthMismatch indicates that the m/z and intensity arrays of a
// spectrum disagree in length.
type ErrPeakLengthMismatch struct {
	MZ        int
	Intensity int
}

func (e *ErrPeakLengthMismatch) Error() string {
	return fmt.Sprintf("peak length mismatch: %d m/z values, %d intensities", e.MZ, e.Intensity)
}
