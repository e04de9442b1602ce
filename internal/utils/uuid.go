package utils

import "github.com/google/uuid"

// maxTraceIDLength bounds client-supplied trace IDs before they reach logs.
const maxTraceIDLength = 64

// UUIDGenerator produces time-ordered UUIDv7 identifiers for plants, journal
// and schedule entries.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return NewID()
}

// NewID returns a UUIDv7 string, falling back to a random UUIDv4 when the
// v7 clock source fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// IsValidTraceID reports whether a client-supplied trace ID may be reused:
// non-empty, at most 64 characters of letters, digits, '-', '_' or '.'.
func IsValidTraceID(s string) bool {
	if s == "" || len(s) > maxTraceIDLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
