// Package slidingwindows provides an iterator adaptor that yields sliding
// windows over the elements of an iter.Seq without copying the elements for
// every window.
//
// A Storage owns one allocation of twice the window size. Each new element is
// written to two mirrored slots, which keeps the current window contiguous
// while the ring wraps, so a step costs two writes instead of a shift of the
// whole window. Because the same memory backs every window, only one Window
// per Storage can be live at a time; this is checked at runtime and a
// violation panics with ErrAliasingViolation.
//
//	s, _ := slidingwindows.NewStorage[int](3)
//	for w := range slidingwindows.Windows(slices.Values([]int{0, 1, 2, 3, 4}), s) {
//		fmt.Println(w.Slice()) // [0 1 2], [1 2 3], [2 3 4]
//	}
//
// The library is organised into several files:
//
//	options.go  – configuration structs & defaults
//	config.go   – option validation
//	logging.go  – default zap logger
//	errors.go   – sentinel errors
//	storage.go  – backing allocation & mirrored ring writes
//	window.go   – the borrowed view handed to callers
//	adaptor.go  – drives the source and hands out windows
//	pool.go     – pooled storages for reuse across adaptors
//	stats.go    – lightweight stats accessors
//	metrics.go  – Prometheus collector for stats
package slidingwindows
