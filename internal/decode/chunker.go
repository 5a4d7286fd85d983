package decode

import (
	"fmt"
	"io"
)

// Chunker partitions a loaded buffer into fixed-size, non-overlapping
// chunks of readLen bytes, in ascending offset order. Trailing bytes
// that do not fill a final chunk are dropped.
type Chunker struct {
	data    []byte
	readLen int
	next    int // index of the next chunk to return
}

// NewChunker creates a chunker over data. readLen must be positive.
func NewChunker(data []byte, readLen int) (*Chunker, error) {
	if readLen <= 0 {
		return nil, fmt.Errorf("%w: cannot decode reads of length %d", ErrInvalidLength, readLen)
	}
	return &Chunker{data: data, readLen: readLen}, nil
}

// Len returns the number of complete chunks the buffer holds.
func (c *Chunker) Len() int {
	return len(c.data) / c.readLen
}

// Next returns the next chunk and its zero-based index, or io.EOF
// after the last complete chunk. The returned slice aliases the
// underlying buffer and must not be modified.
func (c *Chunker) Next() ([]byte, int, error) {
	i := c.next
	end := (i + 1) * c.readLen
	if end > len(c.data) {
		return nil, 0, io.EOF
	}
	c.next++
	return c.data[i*c.readLen : end], i, nil
}
