// Package parser reads FASTQ records from a text stream, for packing
// them back into the binary read encoding.
package parser

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Record is a single FASTQ record as it appears in the input.
type Record struct {
	Header   string // Header line without the leading '@'
	Sequence []byte // Base characters
	Quality  []byte // Quality characters (Phred+33 encoded)
}

// Parser reads FASTQ records from an input stream.
type Parser struct {
	reader *bufio.Reader
	line   []byte // reusable buffer for reading lines
}

// New creates a FASTQ parser over r.
func New(r io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReaderSize(r, 1<<20),
		line:   make([]byte, 0, 512),
	}
}

// Next reads and returns the next FASTQ record.
// Returns io.EOF when no more records are available.
func (p *Parser) Next() (*Record, error) {
	rec := &Record{}

	// Line 1: header, starts with '@'
	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if len(line) == 0 || line[0] != '@' {
		return nil, errors.New("invalid FASTQ: header line must start with @")
	}
	rec.Header = string(line[1:])

	// Line 2: sequence
	line, err = p.readLine()
	if err != nil {
		return nil, err
	}
	rec.Sequence = append(rec.Sequence, line...)

	// Line 3: plus line, content ignored
	line, err = p.readLine()
	if err != nil {
		return nil, err
	}
	if len(line) == 0 || line[0] != '+' {
		return nil, errors.New("invalid FASTQ: separator line must start with +")
	}

	// Line 4: quality scores
	line, err = p.readLine()
	if err != nil {
		return nil, err
	}
	rec.Quality = append(rec.Quality, line...)

	if len(rec.Sequence) != len(rec.Quality) {
		return nil, errors.New("invalid FASTQ: sequence and quality lengths must match")
	}

	return rec, nil
}

// readLine reads a line from the input, stripping the newline.
// Reuses an internal buffer to minimize allocations.
func (p *Parser) readLine() ([]byte, error) {
	p.line = p.line[:0]

	for {
		segment, isPrefix, err := p.reader.ReadLine()
		if err != nil {
			return nil, err
		}

		p.line = append(p.line, segment...)

		if !isPrefix {
			break
		}
	}

	// Trim any trailing CR (for Windows line endings)
	p.line = bytes.TrimSuffix(p.line, []byte{'\r'})

	return p.line, nil
}
