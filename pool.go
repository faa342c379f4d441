package slidingwindows

import "sync"

// StoragePool menyimpan Storage dengan ukuran window yang sama agar alokasi
// dapat dipakai ulang oleh banyak Adaptor. Aman untuk goroutine.
type StoragePool[T any] struct {
	windowSize int
	opts       StorageOptions
	pool       sync.Pool
}

// NewStoragePool membuat pool untuk Storage berukuran windowSize.
func NewStoragePool[T any](windowSize int, opts StorageOptions) (*StoragePool[T], error) {
	if err := validateWindowSize(windowSize); err != nil {
		return nil, err
	}
	return &StoragePool[T]{windowSize: windowSize, opts: opts.withDefaults()}, nil
}

// WindowSize mengembalikan ukuran window dari setiap Storage di pool.
func (p *StoragePool[T]) WindowSize() int { return p.windowSize }

// Get mengambil Storage dari pool atau membuat baru jika tidak tersedia.
func (p *StoragePool[T]) Get() *Storage[T] {
	if s, ok := p.pool.Get().(*Storage[T]); ok {
		return s
	}
	s, err := NewStorageWithOptions[T](p.windowSize, p.opts)
	if err != nil {
		// windowSize sudah divalidasi di NewStoragePool
		panic(err)
	}
	return s
}

// Put mengembalikan Storage ke pool dan melaporkan apakah diterima.
// Hanya Storage dengan ukuran tepat yang tidak sedang dipakai Window/Adaptor
// yang dimasukkan kembali; isinya dikosongkan agar elemen lama bisa di-GC.
func (p *StoragePool[T]) Put(s *Storage[T]) bool {
	if s == nil || s.windowSize != p.windowSize || s.verify() != nil {
		return false
	}
	if s.borrowed.Load() || s.attached.Load() {
		return false
	}
	s.reset()
	p.pool.Put(s)
	return true
}
