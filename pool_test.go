package slidingwindows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoragePoolRejectsEmptyWindow(t *testing.T) {
	_, err := NewStoragePool[int](0, StorageOptions{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestStoragePoolGetPut(t *testing.T) {
	p, err := NewStoragePool[int](3, StorageOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, p.WindowSize())

	s := p.Get()
	require.NotNil(t, s)
	assert.Equal(t, 3, s.WindowSize())

	a, err := NewSliceAdaptor([]int{1, 2, 3, 4}, s)
	require.NoError(t, err)
	w, ok := a.Next()
	require.True(t, ok)

	assert.False(t, p.Put(s), "storage with a live window")
	w.Release()
	assert.False(t, p.Put(s), "storage with an attached adaptor")
	a.Close()

	assert.True(t, p.Put(s))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, s.buf, "pooled storage must not pin old elements")

	// whatever comes back is ready for a new source
	again := p.Get()
	b, err := NewSliceAdaptor([]int{5, 6, 7}, again)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 6, 7}}, collect(b))
}

func TestStoragePoolRejectsForeignStorage(t *testing.T) {
	p, err := NewStoragePool[int](3, StorageOptions{})
	require.NoError(t, err)

	assert.False(t, p.Put(nil))
	assert.False(t, p.Put(newTestStorage(t, 4)), "different window size")

	released := newTestStorage(t, 3)
	_, err = released.IntoSlice()
	require.NoError(t, err)
	assert.False(t, p.Put(released), "released storage")
}
