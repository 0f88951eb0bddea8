package domain

import "fmt"

// Disposition is the user's decision about a single item.
// It is a closed set; anything else is rejected at the boundary.
type Disposition string

const (
	DispositionTake      Disposition = "take"
	DispositionTakeLater Disposition = "take_later"
	DispositionSkip      Disposition = "skip"
)

// Dispositions returns the closed set in presentation order.
func Dispositions() []Disposition {
	return []Disposition{DispositionTake, DispositionTakeLater, DispositionSkip}
}

// Valid reports whether d is a member of the closed set.
func (d Disposition) Valid() bool {
	switch d {
	case DispositionTake, DispositionTakeLater, DispositionSkip:
		return true
	}
	return false
}

// ParseDisposition converts a raw string into a Disposition.
// It returns ErrInvalidDisposition for anything outside the closed set.
func ParseDisposition(s string) (Disposition, error) {
	d := Disposition(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisposition, s)
	}
	return d, nil
}
