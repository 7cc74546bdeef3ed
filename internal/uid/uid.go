// Package uid generates the public opaque identifiers assigned to every
// entity at creation. Identifiers are random 128-bit values in the standard
// UUID version-4 textual form; they are immutable and globally unique, and
// they are the only identifiers that cross the ownership boundary.
package uid

import "github.com/google/uuid"

// New returns a fresh opaque identifier. It fails only when the underlying
// random source is unavailable; callers must abort the surrounding creation
// rather than fall back to a weaker value.
func New() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
