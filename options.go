package slidingwindows

import "go.uber.org/zap"

// StorageOptions menyediakan opsi konfigurasi untuk Storage.
//
//   - Logger: logger terstruktur (nil = NewLogger())
//
// Semua bidang bersifat opsi. Lihat DefaultStorageOptions() untuk nilai bawaan.
type StorageOptions struct {
	Logger *zap.SugaredLogger // Logger untuk event storage (create/adopt/release, pelanggaran aliasing)
}

// DefaultStorageOptions mengembalikan konfigurasi default yang digunakan NewStorage.
func DefaultStorageOptions() StorageOptions {
	return StorageOptions{
		Logger: NewLogger(),
	}
}

// AdaptorOptions menyediakan opsi konfigurasi untuk Adaptor.
//
//   - SourceLen: jumlah elemen sumber bila diketahui (0 = tidak diketahui)
//   - Logger:    logger terstruktur (nil = logger milik Storage)
//
// SourceLen hanya dipakai untuk SizeHint; nilai yang salah tidak mengubah
// window yang dihasilkan.
type AdaptorOptions struct {
	SourceLen int                // Total elemen pada sumber, 0 = tidak diketahui
	Logger    *zap.SugaredLogger // Logger untuk event adaptor
}

// DefaultAdaptorOptions mengembalikan konfigurasi default yang digunakan NewAdaptor.
func DefaultAdaptorOptions() AdaptorOptions {
	return AdaptorOptions{}
}
