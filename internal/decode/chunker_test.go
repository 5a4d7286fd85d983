package decode

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChunker_InvalidLength(t *testing.T) {
	t.Parallel()

	for _, readLen := range []int{0, -5} {
		_, err := NewChunker([]byte{1, 2, 3}, readLen)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidLength))
	}
}

func TestChunker_EvenSplit(t *testing.T) {
	t.Parallel()

	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	c, err := NewChunker(data, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	for want := 0; want < 3; want++ {
		chunk, i, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, i)
		assert.Equal(t, data[want*4:(want+1)*4], chunk)
	}

	_, _, err = c.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestChunker_DropsTrailingBytes(t *testing.T) {
	t.Parallel()

	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	c, err := NewChunker(data, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	chunk, i, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, data[:7], chunk)

	// The 5 leftover bytes never surface
	_, _, err = c.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestChunker_BufferShorterThanRead(t *testing.T) {
	t.Parallel()

	c, err := NewChunker([]byte{1, 2}, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	_, _, err = c.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestChunker_NonRestartable(t *testing.T) {
	t.Parallel()

	c, err := NewChunker([]byte{1, 2, 3, 4}, 2)
	require.NoError(t, err)

	for {
		if _, _, err := c.Next(); err != nil {
			break
		}
	}

	// Exhausted chunkers stay exhausted
	_, _, err = c.Next()
	assert.True(t, errors.Is(err, io.EOF))
}
