package slidingwindows

import (
	"errors"
	"testing"

	"go.uber.org/goleak"
)

// iter.Pull runs the source on its own goroutine; every test must leave its
// adaptors exhausted or closed.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recoverErr runs f and returns the error it panicked with, or nil.
func recoverErr(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			err = errors.New("panic value is not an error")
			return
		}
		err = e
	}()
	f()
	return nil
}

// collect drains a into plain slices.
func collect[T any](a *Adaptor[T]) [][]T {
	var out [][]T
	for w := range a.All() {
		out = append(out, append([]T(nil), w.Slice()...))
	}
	return out
}

// naturals yields 0, 1, 2, ... until the consumer stops.
func naturals(yield func(int) bool) {
	for i := 0; ; i++ {
		if !yield(i) {
			return
		}
	}
}
