// Package id generates opaque identifiers for stored records.
//
// Identifiers are UUIDv4 values encoded as 26-character lowercase base32
// without padding, which keeps them URL-safe and case-insensitive while
// remaining decodable back to the underlying 16 bytes.
package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a new random identifier.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(value[:])), nil
}

// MustNewID returns a new random identifier and panics when entropy is
// unavailable. Reserve it for startup paths and tests.
func MustNewID() string {
	value, err := NewID()
	if err != nil {
		panic(err)
	}
	return value
}
