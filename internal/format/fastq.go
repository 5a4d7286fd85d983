// Package format renders decoded reads as FASTQ text.
package format

import (
	"fmt"
	"io"
)

// Record is one decoded read ready for FASTQ output.
type Record struct {
	Index    int    // 1-based read number
	Sequence []byte // Base characters (A, C, G, T)
	Quality  []byte // Quality characters (Phred+33 encoded)
}

// String returns the four-line FASTQ block for the record, with no
// trailing newline:
//
//	@READ_<n>
//	<sequence>
//	+READ_<n>
//	<quality>
func (r Record) String() string {
	return fmt.Sprintf("@READ_%d\n%s\n+READ_%d\n%s", r.Index, r.Sequence, r.Index, r.Quality)
}

// Write emits the FASTQ block followed by a single newline, so that
// consecutive records form a valid FASTQ stream.
func (r Record) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "@READ_%d\n%s\n+READ_%d\n%s\n", r.Index, r.Sequence, r.Index, r.Quality)
	return err
}
