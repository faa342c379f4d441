package slidingwindows

import (
	"fmt"
	"iter"
	"slices"
)

// Window is the view an Adaptor yields for one position. It borrows the live
// region of its Storage without copying any element.
//
// Only one Window per Storage can be live. It must be released with Release
// before the Adaptor is asked for the next one; ranging over Adaptor.All or
// Windows does that automatically. Using a Window after it was released
// panics with ErrStaleWindow.
//
// Changes made through Slice, AllMut, Ptr or Set persist in the Storage and
// are seen by the following windows for as long as the element stays in them.
type Window[T any] struct {
	storage    *Storage[T]
	offset     int
	generation uint64
	released   bool
}

// live reports whether w still holds the Storage borrow.
func (w *Window[T]) live() bool {
	return !w.released && w.generation == w.storage.generation && w.storage.borrowed.Load()
}

func (w *Window[T]) region() []T {
	if !w.live() {
		panic(fmt.Errorf("window %d used after release: %w", w.generation, ErrStaleWindow))
	}
	end := w.offset + w.storage.windowSize
	return w.storage.buf[w.offset:end:end]
}

// Len returns the number of elements in the window, which is always the
// window size of the Storage.
func (w *Window[T]) Len() int { return w.storage.windowSize }

// Slice returns the window as a contiguous slice backed by the Storage.
// Writes through it behave like Set.
func (w *Window[T]) Slice() []T { return w.region() }

// At returns the i-th element, oldest first.
func (w *Window[T]) At(i int) T { return w.region()[i] }

// Ptr returns a pointer to the i-th element. The pointer must not be used
// after the window is released.
func (w *Window[T]) Ptr(i int) *T {
	return &w.region()[i]
}

// Set replaces the i-th element.
func (w *Window[T]) Set(i int, v T) {
	w.region()[i] = v
}

// All iterates the elements, oldest first.
func (w *Window[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range w.region() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates the elements, newest first.
func (w *Window[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		r := w.region()
		for i := len(r) - 1; i >= 0; i-- {
			if !yield(r[i]) {
				return
			}
		}
	}
}

// AllMut iterates index and pointer pairs so elements can be changed in place.
func (w *Window[T]) AllMut() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		r := w.region()
		for i := range r {
			if !yield(i, &r[i]) {
				return
			}
		}
	}
}

// Release ends the window's borrow of the Storage. Calling it more than once
// is a no-op.
func (w *Window[T]) Release() {
	if w.released {
		return
	}
	if !w.live() {
		panic(fmt.Errorf("release of window %d: %w", w.generation, ErrStaleWindow))
	}
	w.released = true
	w.storage.borrowed.Store(false)
}

// String formats the window as Window[e0 e1 ...].
func (w *Window[T]) String() string {
	if !w.live() {
		return "Window(released)"
	}
	return fmt.Sprintf("Window%v", w.region())
}

// Equal reports whether w holds exactly the elements of want, in order.
func Equal[T comparable](w *Window[T], want []T) bool {
	return slices.Equal(w.region(), want)
}
