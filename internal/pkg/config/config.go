package config

import (
	"io"
	"time"
)

// Config is the read-only view of runtime configuration used by the relay
// service and the enquiry client.
//
// Implementations decide how missing keys or unconvertible values are handled;
// the viper implementation returns the zero value.
type Config interface {
	io.Closer

	// GetBool returns the value for key as a bool.
	GetBool(key string) bool
	// GetInt returns the value for key as an int.
	GetInt(key string) int
	// GetFloat64 returns the value for key as a float64.
	GetFloat64(key string) float64
	// GetString returns the value for key as a string.
	GetString(key string) string
	// GetSecond returns the integer value for key as a number of seconds.
	GetSecond(key string) time.Duration
	// GetArray returns the value for key as a list.
	// Scalar values are stored as <element1>,<element2>,...
	GetArray(key string) []string
}
