// Package storage provides the durable string-keyed store behind results and
// the practice scoreboard. The SQLite implementation uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has no value.
var ErrNotFound = errors.New("storage: key not found")

// KV is a durable mapping from string keys to text values.
type KV interface {
	// Get returns the value for key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set creates or overwrites key.
	Set(ctx context.Context, key, value string) error
	// SetIfAbsent writes key only if it has no value yet and reports whether
	// the write happened.
	SetIfAbsent(ctx context.Context, key, value string) (bool, error)
	// ListKeys returns every key in ascending order.
	ListKeys(ctx context.Context) ([]string, error)
	// MultiGet returns the values of the keys that exist. Missing keys are
	// absent from the map.
	MultiGet(ctx context.Context, keys []string) (map[string]string, error)
}
