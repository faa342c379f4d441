package slidingwindows

import (
	"fmt"
	"slices"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Storage holds the backing allocation for the windows of an Adaptor.
//
// The buffer is twice the window size. Every element is written to its slot
// in the lower half and to the mirrored slot in the upper half, so the live
// window is always one contiguous region buf[offset:offset+windowSize] no
// matter where the ring cursor is. Sliding costs two element writes and never
// shifts the elements already placed.
//
// buf layout for windowSize 3 after pushing 0..4:
//
//	slot   0 1 2 | 3 4 5
//	value  3 4 2 | 3 4 2
//	window     [2 3 4]     offset 2
//
// A Storage is not safe for concurrent use; only GetStats may be called from
// another goroutine.
type Storage[T any] struct {
	buf        []T
	windowSize int
	filled     int    // elements written since the last reset, capped at windowSize
	offset     int    // start of the live window inside buf
	next       int    // lower-half slot of the next write
	generation uint64 // id of the most recently issued window

	borrowed atomic.Bool // a Window is live
	attached atomic.Bool // an Adaptor is live
	consumed bool        // IntoSlice was called

	stats  storageStats
	logger *zap.SugaredLogger
}

// NewStorage creates a Storage for windows of windowSize elements, using
// DefaultStorageOptions.
func NewStorage[T any](windowSize int) (*Storage[T], error) {
	return NewStorageWithOptions[T](windowSize, DefaultStorageOptions())
}

// NewStorageWithOptions creates a Storage with custom options. It allocates
// twice the window size.
func NewStorageWithOptions[T any](windowSize int, opts StorageOptions) (*Storage[T], error) {
	if err := validateWindowSize(windowSize); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	s := &Storage[T]{
		buf:        make([]T, 2*windowSize),
		windowSize: windowSize,
		logger:     opts.Logger,
	}
	s.logger.Debugw("Storage created", zap.Int("windowSize", windowSize), zap.Int("capacity", len(s.buf)))
	return s, nil
}

// AdoptStorage creates a Storage on top of buf's backing array instead of
// allocating. The previous contents of buf are discarded. The allocation is
// reused as is when cap(buf) >= 2*windowSize, otherwise it is grown once.
func AdoptStorage[T any](buf []T, windowSize int) (*Storage[T], error) {
	return AdoptStorageWithOptions(buf, windowSize, DefaultStorageOptions())
}

// AdoptStorageWithOptions is AdoptStorage with custom options.
func AdoptStorageWithOptions[T any](buf []T, windowSize int, opts StorageOptions) (*Storage[T], error) {
	if err := validateWindowSize(windowSize); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	need := 2 * windowSize
	reused := cap(buf) >= need
	if !reused {
		buf = slices.Grow(buf[:0], need)
	}
	buf = buf[:need]
	clear(buf)

	s := &Storage[T]{
		buf:        buf,
		windowSize: windowSize,
		logger:     opts.Logger,
	}
	s.logger.Debugw("Storage adopted", zap.Int("windowSize", windowSize), zap.Int("capacity", cap(buf)), zap.Bool("reused", reused))
	return s, nil
}

// IntoSlice gives the backing allocation back to the caller. The elements of
// the last window (or the elements received so far, if the window never
// filled) are moved to the front in order and returned; the rest of the
// buffer is zeroed but kept as spare capacity.
//
// It fails with ErrAliasingViolation while a Window or an Adaptor still uses
// the Storage, and with ErrStorageReleased when called twice. The Storage
// must not be used afterwards.
func (s *Storage[T]) IntoSlice() ([]T, error) {
	if s.consumed {
		return nil, ErrStorageReleased
	}
	if s.borrowed.Load() {
		return nil, fmt.Errorf("release storage with a live window: %w", ErrAliasingViolation)
	}
	if s.attached.Load() {
		return nil, fmt.Errorf("release storage with an attached adaptor: %w", ErrAliasingViolation)
	}

	n := s.filled
	if n == s.windowSize {
		copy(s.buf[:n], s.buf[s.offset:s.offset+n])
	}
	clear(s.buf[n:])
	out := s.buf[:n]

	s.buf = nil
	s.consumed = true
	s.logger.Debugw("Storage released", zap.Int("len", len(out)), zap.Int("capacity", cap(out)))
	return out, nil
}

// verify checks the buffer against the recorded window size.
func (s *Storage[T]) verify() error {
	if s.consumed {
		return ErrStorageReleased
	}
	if len(s.buf) != 2*s.windowSize {
		return fmt.Errorf("buffer holds %d slots, window size %d needs %d: %w", len(s.buf), s.windowSize, 2*s.windowSize, ErrSizeMismatch)
	}
	return nil
}

// attach claims the Storage for an Adaptor and empties it.
func (s *Storage[T]) attach() error {
	if err := s.verify(); err != nil {
		return err
	}
	if s.borrowed.Load() {
		return fmt.Errorf("attach while a window is live: %w", ErrAliasingViolation)
	}
	if !s.attached.CompareAndSwap(false, true) {
		return fmt.Errorf("storage is already attached to an adaptor: %w", ErrAliasingViolation)
	}
	s.reset()
	s.stats.attachments.Inc()
	return nil
}

func (s *Storage[T]) detach() {
	s.attached.Store(false)
}

// reset drops the logical contents so the allocation can serve a new source.
func (s *Storage[T]) reset() {
	clear(s.buf)
	s.filled = 0
	s.offset = 0
	s.next = 0
}

// push writes v into both halves of the ring and slides the window by one
// once it is full. It reports whether a complete window is available.
func (s *Storage[T]) push(v T) bool {
	if s.borrowed.Load() {
		s.violation("push")
	}

	slot := s.next
	s.buf[slot] = v
	s.buf[slot+s.windowSize] = v
	s.stats.elements.Inc()

	s.next++
	if s.next == s.windowSize {
		s.next = 0
	}

	if s.filled < s.windowSize {
		s.filled++
		return s.filled == s.windowSize
	}
	// the oldest element sat at the slot just overwritten; the window now
	// starts right after it
	s.offset = s.next
	if s.offset == 0 && s.windowSize > 1 {
		s.wrap()
	}
	return true
}

// wrap moves the window from the upper half back to the lower one. Since the
// last wrap every surviving element has only been reachable through its
// upper-half copy, so that copy carries any write made through a Window.
// Costs windowSize-1 copies once every windowSize pushes.
func (s *Storage[T]) wrap() {
	n := s.windowSize
	copy(s.buf[:n-1], s.buf[n:2*n-1])
	s.stats.wraps.Inc()
}

// issue hands out the Window over the live region.
func (s *Storage[T]) issue() *Window[T] {
	if !s.borrowed.CompareAndSwap(false, true) {
		s.violation("issue window")
	}
	s.generation++
	s.stats.windows.Inc()
	return &Window[T]{
		storage:    s,
		offset:     s.offset,
		generation: s.generation,
	}
}

// violation records and raises an aliasing violation.
func (s *Storage[T]) violation(op string) {
	s.stats.violations.Inc()
	err := fmt.Errorf("%s before the previous window was released: %w", op, ErrAliasingViolation)
	s.logger.Errorw("Aliasing violation", zap.String("op", op), zap.Int("windowSize", s.windowSize), zap.Uint64("generation", s.generation))
	panic(err)
}
