// Package uid generates identifiers for correlation ids and enquiry references.
package uid

import "github.com/google/uuid"

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}

// UUID generates time-ordered UUIDs so references sort by submission time.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a UUIDv7, or a random UUIDv4 if the clock source fails.
func (*UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Static always returns the same identifier.
type Static string

// Generate returns s.
func (s Static) Generate() string {
	return string(s)
}
