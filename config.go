package slidingwindows

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"
)

func validateWindowSize(windowSize int) error {
	if windowSize < 1 {
		return fmt.Errorf("window size must be at least 1, got %d: %w", windowSize, ErrInvalidConfiguration)
	}
	return nil
}

// withDefaults fills unset storage options.
func (o StorageOptions) withDefaults() StorageOptions {
	if o.Logger == nil {
		o.Logger = NewLogger()
	}
	return o
}

// validate checks everything NewAdaptorWithOptions needs before it attaches
// to the Storage. All problems are reported together.
func validateAdaptor[T any](seq iter.Seq[T], s *Storage[T], opts AdaptorOptions) error {
	var errs error
	if seq == nil {
		errs = multierr.Append(errs, fmt.Errorf("source sequence is nil: %w", ErrInvalidConfiguration))
	}
	if s == nil {
		errs = multierr.Append(errs, fmt.Errorf("storage is nil: %w", ErrInvalidConfiguration))
	}
	if opts.SourceLen < 0 {
		errs = multierr.Append(errs, fmt.Errorf("source length must not be negative, got %d: %w", opts.SourceLen, ErrInvalidConfiguration))
	}
	return errs
}
