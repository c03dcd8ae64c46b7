package probetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	ss, err := NewSet(7)
	require.NoError(t, err)
	require.Len(t, ss.slots, 7)

	_, err = NewSet(0)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestSet_Put(t *testing.T) {
	ss, err := NewSet(7)
	require.NoError(t, err)

	require.NoError(t, ss.Put(1))
	require.NoError(t, ss.Put(1))
	assert.Equal(t, 1, ss.Len())
	assert.True(t, ss.Has(1))
	assert.False(t, ss.Has(8))

	assert.ErrorIs(t, ss.Put(-1), ErrNegativeKey)
}

func TestSet_Put_Grow(t *testing.T) {
	ss, err := NewSet(7)
	require.NoError(t, err)

	for key := range 6 {
		require.NoError(t, ss.Put(key*7))
	}

	assert.Equal(t, 19, ss.Capacity())
	assert.Equal(t, 6, ss.Len())

	for key := range 6 {
		assert.True(t, ss.Has(key*7))
	}
}

func TestSet_Delete(t *testing.T) {
	ss, err := NewSet(7)
	require.NoError(t, err)

	require.NoError(t, ss.Put(4))
	require.NoError(t, ss.Put(11))

	assert.True(t, ss.Delete(11))
	assert.False(t, ss.Delete(11))
	assert.False(t, ss.Has(11))
	assert.Equal(t, 1, ss.Len())
}

func TestSet_Reset(t *testing.T) {
	ss, err := NewSet(7)
	require.NoError(t, err)

	for key := range 5 {
		require.NoError(t, ss.Put(key))
	}

	ss.Reset()

	assert.Equal(t, 0, ss.Len())
	assert.Equal(t, 7, ss.Capacity())
	assert.False(t, ss.Has(0))
}
