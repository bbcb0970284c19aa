package store

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("credential store unavailable")

// Store defines a public type used by credcheck APIs.
//
// Store instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Store interface {
	// Lookup returns the value stored under key. The second return reports
	// whether the key was present at all; an absent key is not an error.
	// Errors are reserved for backend failures and should wrap
	// ErrUnavailable when the backend cannot be reached.
	Lookup(ctx context.Context, key string) (string, bool, error)
}
