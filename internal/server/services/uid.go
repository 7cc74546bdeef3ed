package services

import (
	"fmt"

	"github.com/okatkov/lookbook/internal/uid"
)

// newEntityUID allocates the opaque identifier for a new entity. Failure
// aborts the surrounding creation; there is no weaker fallback.
func newEntityUID() (string, error) {
	u, err := uid.New()
	if err != nil {
		return "", fmt.Errorf("generating uid: %w", err)
	}
	return u, nil
}
