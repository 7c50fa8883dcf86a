package go_swish

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh Swish instruction id: a UUIDv4 with the dashes
// stripped and the hex uppercased, 32 characters.
func NewID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
