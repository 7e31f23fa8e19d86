package ids

import (
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// New returns a fresh identifier for users and messages.
func New() string {
	return uuid.NewString()
}

// NewSession returns an opaque session identifier. Sessions are bearer
// credentials, so they get their own id space with 128 random bits.
func NewSession() string {
	return ksuid.New().String()
}
