package decode

import (
	"fmt"

	"github.com/vertti/fqbin/internal/codec"
	"github.com/vertti/fqbin/internal/format"
)

// Reader is a single decode pass over a session's records. It is
// non-restartable: once Next returns io.EOF, start a fresh pass with
// Session.Records. A reader decodes one chunk per Next call and never
// reads ahead of demand.
type Reader struct {
	session *Session
	chunker *Chunker
}

// Next decodes and returns the next record, with 1-based indices in
// ascending order. The first call loads the source if needed and fails
// with ErrInsufficientData when the buffer cannot hold even one read.
// Returns io.EOF after the last complete record.
func (r *Reader) Next() (format.Record, error) {
	if r.chunker == nil {
		data, err := r.session.Load()
		if err != nil {
			return format.Record{}, err
		}
		c, err := NewChunker(data, r.session.readLen)
		if err != nil {
			return format.Record{}, err
		}
		if c.Len() == 0 {
			return format.Record{}, fmt.Errorf(
				"%w: the input file %q does not contain enough data to form a single read of length %d",
				ErrInsufficientData, r.session.path, r.session.readLen)
		}
		r.chunker = c
	}

	chunk, i, err := r.chunker.Next()
	if err != nil {
		return format.Record{}, err
	}

	seq, qual := codec.DecodeChunk(chunk)
	return format.Record{Index: i + 1, Sequence: seq, Quality: qual}, nil
}
