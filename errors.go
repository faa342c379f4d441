package slidingwindows

import (
	"errors"
	"fmt"
)

// All failures in this package are contract violations by the caller. They are
// returned from constructors and carried as the panic value everywhere else, so
// a recovered value can be matched with errors.Is.
var (
	// ErrInvalidConfiguration is returned for a window size below 1 and other
	// malformed options.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAliasingViolation means a second view into a Storage was requested
	// while the first one was still live.
	ErrAliasingViolation = errors.New("aliasing violation")

	// ErrSizeMismatch means the Storage buffer does not match its window
	// size.
	ErrSizeMismatch = errors.New("storage size mismatch")

	// ErrStorageReleased is returned for a Storage whose buffer was already
	// handed back with IntoSlice. It wraps ErrSizeMismatch, since a released
	// Storage holds no buffer at all.
	ErrStorageReleased = fmt.Errorf("storage already released: %w", ErrSizeMismatch)

	// ErrStaleWindow is raised when a Window is used after Release or after
	// the Storage has moved on to a newer window.
	ErrStaleWindow = fmt.Errorf("stale window: %w", ErrAliasingViolation)
)
