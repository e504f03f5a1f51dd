package utils

import "github.com/google/uuid"

// NewID generates an opaque unique identifier in the UUIDv4 format used
// for every entity key in the generated dataset.
func NewID() string {
	return uuid.NewString()
}
