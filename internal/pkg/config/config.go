package config

import (
	"io"
	"time"
)

// Config defines the configuration lookups the application relies on.
//
// Implementations handle retrieval and type conversion and return the zero
// value when a key is missing or cannot be converted.
type Config interface {
	io.Closer

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetFloat64 retrieves the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetSecond retrieves the value associated with key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetArray retrieves the value associated with key as a slice of strings.
	// The value is stored with format <element1>,<element2>,... or as a list.
	// Elements are trimmed and empty elements are dropped.
	GetArray(key string) []string
}
