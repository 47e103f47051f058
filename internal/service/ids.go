package service

import (
	"strings"

	"github.com/google/uuid"
)

// newID returns the first n hex chars of a random UUID. Uniqueness is
// probabilistic, same as the original ticket ids.
func newID(n int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > 0 && n < len(id) {
		return id[:n]
	}
	return id
}
