// Package config exposes typed read access to runtime configuration behind a
// small interface so modules never depend on a concrete provider.
package config

import (
	"io"
	"time"
)

// Config defines a set of methods for retrieving configuration values of
// various types. Implementations handle retrieval and type conversion and
// fall back to zero values for missing keys.
type Config interface {
	io.Closer

	// GetString retrieves the value for key as a string.
	GetString(key string) string

	// GetBool retrieves the value for key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value for key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value for key as an int32.
	GetInt32(key string) int32

	// GetFloat64 retrieves the value for key as a float64.
	GetFloat64(key string) float64

	// GetArray retrieves the value for key as a string slice.
	// The value is stored with format <element1>,<element2>,...
	GetArray(key string) []string

	// GetSecond retrieves the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value for key as a duration in minutes.
	GetMinute(key string) time.Duration

	// GetHour retrieves the value for key as a duration in hours.
	GetHour(key string) time.Duration
}
