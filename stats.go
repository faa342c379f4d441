package slidingwindows

import "go.uber.org/atomic"

// Stats menyimpan statistik pemakaian sebuah Storage.
type Stats struct {
	Windows     uint64 // window yang diterbitkan
	Elements    uint64 // elemen yang ditulis (masing-masing ke dua salinan)
	Wraps       uint64 // window kembali dari separuh atas ke separuh bawah
	Violations  uint64 // pelanggaran aliasing yang terdeteksi
	Attachments uint64 // berapa kali Storage dipasang ke Adaptor
}

type storageStats struct {
	windows     atomic.Uint64
	elements    atomic.Uint64
	wraps       atomic.Uint64
	violations  atomic.Uint64
	attachments atomic.Uint64
}

// GetStats mengambil snapshot statistik tanpa lock.
func (s *Storage[T]) GetStats() Stats {
	return Stats{
		Windows:     s.stats.windows.Load(),
		Elements:    s.stats.elements.Load(),
		Wraps:       s.stats.wraps.Load(),
		Violations:  s.stats.violations.Load(),
		Attachments: s.stats.attachments.Load(),
	}
}

// ResetStats mengatur ulang semua penghitung.
func (s *Storage[T]) ResetStats() {
	s.stats.windows.Store(0)
	s.stats.elements.Store(0)
	s.stats.wraps.Store(0)
	s.stats.violations.Store(0)
	s.stats.attachments.Store(0)
}

// WindowSize mengembalikan ukuran window.
func (s *Storage[T]) WindowSize() int { return s.windowSize }

// Cap mengembalikan kapasitas buffer fisik (2 * WindowSize selama belum dirilis).
func (s *Storage[T]) Cap() int { return len(s.buf) }

// Len mengembalikan jumlah elemen yang saat ini berada di window (0..WindowSize).
func (s *Storage[T]) Len() int { return s.filled }
