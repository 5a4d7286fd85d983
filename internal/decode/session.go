// Package decode turns binary-encoded DNA reads into FASTQ records.
//
// A Session owns one binary source and a fixed read length. The source
// is loaded into memory at most once; decoding is a pull-based pass
// over the buffer that yields one formatted record per chunk.
package decode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Sentinel errors returned by the decode pipeline. All three are
// deterministic for fixed inputs, so callers should not retry.
var (
	// ErrInvalidLength reports a non-positive read length.
	ErrInvalidLength = errors.New("invalid read length")
	// ErrSourceNotFound reports a source path that cannot be opened.
	ErrSourceNotFound = errors.New("source not found")
	// ErrInsufficientData reports a source shorter than one read.
	ErrInsufficientData = errors.New("insufficient data to decode")
)

// Session owns one binary input source and decodes it into FASTQ
// records of a fixed read length.
type Session struct {
	path    string
	readLen int
	data    []byte
	loaded  bool
}

// NewSession creates a decode session for the file at path. readLen is
// the number of bytes (and therefore bases) per decoded read; values
// below 1 are rejected.
func NewSession(path string, readLen int) (*Session, error) {
	if readLen <= 0 {
		return nil, fmt.Errorf("%w: cannot decode reads of length %d, read length must be a positive integer", ErrInvalidLength, readLen)
	}
	return &Session{path: path, readLen: readLen}, nil
}

// Load reads the whole source into memory. Repeated calls return the
// already-loaded buffer. Gzip-compressed sources are decompressed
// transparently based on their magic bytes.
func (s *Session) Load() ([]byte, error) {
	if s.loaded {
		return s.data, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %s not found", ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	data, err := readMaybeGzip(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	s.data = data
	s.loaded = true
	return s.data, nil
}

// Records starts one decode pass over the source. Each pass is
// independent: consuming the returned reader does not affect later
// passes, and the loaded buffer is shared between them.
func (s *Session) Records() *Reader {
	return &Reader{session: s}
}

// readMaybeGzip reads all of r, decompressing if it starts with the
// gzip magic bytes.
func readMaybeGzip(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(2)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(header) == 2 && header[0] == 0x1f && header[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer gz.Close() //nolint:errcheck // read-only stream
		return io.ReadAll(gz)
	}

	return io.ReadAll(br)
}
