// Package config reads configuration values, most notably declarative rule
// sets for value objects, from files or in-memory documents.
package config

import "io"

// Config defines the configuration reads used by this module.
type Config interface {
	io.Closer

	// IsSet reports whether the key holds a value.
	IsSet(key string) bool

	// Get returns the raw value stored under key, or nil.
	Get(key string) any

	// GetString retrieves the configuration value associated with the given key as a string.
	GetString(key string) string

	// GetBool retrieves the configuration value associated with the given key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the configuration value associated with the given key as an int.
	GetInt(key string) int

	// GetArray retrieves the configuration value associated with the given key as a slice of strings.
	// Configuration value is stored with format <element1>,<element2>,...
	GetArray(key string) []string

	// UnmarshalKey decodes the value stored under key into out.
	UnmarshalKey(key string, out any) error
}
