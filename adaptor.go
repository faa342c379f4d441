package slidingwindows

import (
	"iter"
	"slices"

	"go.uber.org/zap"
)

type state int

const (
	statePriming state = iota
	stateSliding
	stateExhausted
)

func (st state) String() string {
	switch st {
	case statePriming:
		return "priming"
	case stateSliding:
		return "sliding"
	case stateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Adaptor yields a Window for every position of a source sequence once the
// first windowSize elements have been seen. It exclusively uses its Storage
// until it is exhausted or closed.
//
// The adaptor is fused: after the source ends, Next keeps returning false.
type Adaptor[T any] struct {
	next    func() (T, bool)
	stop    func()
	storage *Storage[T]
	state   state
	window  *Window[T] // last window handed out

	remaining int // elements left in the source, -1 if unknown
	produced  int

	logger *zap.SugaredLogger
}

// NewAdaptor wraps seq with the default options. The Storage is emptied and
// stays claimed until the adaptor is exhausted or closed.
func NewAdaptor[T any](seq iter.Seq[T], s *Storage[T]) (*Adaptor[T], error) {
	return NewAdaptorWithOptions(seq, s, DefaultAdaptorOptions())
}

// NewAdaptorWithOptions wraps seq with custom options.
func NewAdaptorWithOptions[T any](seq iter.Seq[T], s *Storage[T], opts AdaptorOptions) (*Adaptor[T], error) {
	remaining := -1
	if opts.SourceLen > 0 {
		remaining = opts.SourceLen
	}
	return newAdaptor(seq, s, opts, remaining)
}

// NewSliceAdaptor wraps the elements of src. The source length is known, so
// SizeHint is exact.
func NewSliceAdaptor[T any](src []T, s *Storage[T]) (*Adaptor[T], error) {
	return newAdaptor(slices.Values(src), s, DefaultAdaptorOptions(), len(src))
}

func newAdaptor[T any](seq iter.Seq[T], s *Storage[T], opts AdaptorOptions, remaining int) (*Adaptor[T], error) {
	if err := validateAdaptor(seq, s, opts); err != nil {
		return nil, err
	}
	if err := s.attach(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = s.logger
	}

	next, stop := iter.Pull(seq)
	return &Adaptor[T]{
		next:      next,
		stop:      stop,
		storage:   s,
		state:     statePriming,
		remaining: remaining,
		logger:    logger,
	}, nil
}

// Windows is the range-over-func form of NewAdaptor. Each Window is released
// when the loop body returns, and leaving the loop early closes the adaptor,
// so the Storage is free again once the loop is done.
//
// It panics if the adaptor cannot be attached to s.
func Windows[T any](seq iter.Seq[T], s *Storage[T]) iter.Seq[*Window[T]] {
	return func(yield func(*Window[T]) bool) {
		a, err := NewAdaptor(seq, s)
		if err != nil {
			panic(err)
		}
		a.All()(yield)
	}
}

// Next advances the source and returns the Window for the new position, or
// false when the source is exhausted. The Window returned by the previous
// call must have been released, otherwise Next panics with
// ErrAliasingViolation.
func (a *Adaptor[T]) Next() (*Window[T], bool) {
	if a.state == stateExhausted {
		return nil, false
	}
	if a.storage.borrowed.Load() {
		a.storage.violation("next")
	}

	for {
		v, ok := a.pull()
		if !ok {
			a.finish()
			return nil, false
		}
		if a.storage.push(v) {
			break
		}
	}

	a.state = stateSliding
	a.window = a.storage.issue()
	a.produced++
	return a.window, true
}

func (a *Adaptor[T]) pull() (T, bool) {
	v, ok := a.next()
	if ok && a.remaining > 0 {
		a.remaining--
	}
	return v, ok
}

// All ranges over the remaining windows, releasing each one after the loop
// body. The adaptor is closed when the loop ends.
func (a *Adaptor[T]) All() iter.Seq[*Window[T]] {
	return func(yield func(*Window[T]) bool) {
		defer a.Close()
		for {
			w, ok := a.Next()
			if !ok {
				return
			}
			more := yield(w)
			w.Release()
			if !more {
				return
			}
		}
	}
}

// SizeHint returns bounds on the number of windows still to come. ok is false
// when the source length is unknown; lower is then 0 and upper meaningless.
func (a *Adaptor[T]) SizeHint() (lower, upper int, ok bool) {
	if a.state == stateExhausted {
		return 0, 0, true
	}
	if a.remaining < 0 {
		return 0, 0, false
	}
	n := a.remaining
	if a.state == statePriming {
		n = max(0, a.storage.filled+a.remaining-(a.storage.windowSize-1))
	}
	return n, n, true
}

// Close stops the source, releases the live window if any and gives the
// Storage back. It is safe to call more than once.
func (a *Adaptor[T]) Close() {
	if a.window != nil && !a.window.released && a.window.live() {
		a.window.Release()
	}
	if a.state != stateExhausted {
		a.finish()
	}
}

func (a *Adaptor[T]) finish() {
	a.state = stateExhausted
	a.stop()
	a.storage.detach()
	a.logger.Debugw("Adaptor finished", zap.Int("windows", a.produced), zap.Int("windowSize", a.storage.windowSize))
}

// Produced returns the number of windows yielded so far.
func (a *Adaptor[T]) Produced() int { return a.produced }
