// Package codec converts between the one-byte-per-base binary read
// encoding and FASTQ text. Each encoded byte holds one base in its top
// two bits and one Phred quality score (0-63) in its bottom six bits.
package codec

import "fmt"

// Phred+33 quality encoding bounds.
const (
	PhredOffset = 33
	MaxQuality  = 63

	qualityMask = 0x3F
)

// baseTable maps a 2-bit base code to its nucleotide character.
// Encoding: A=00, C=01, G=10, T=11.
var baseTable = [4]byte{'A', 'C', 'G', 'T'}

const invalidBase = 0xFF

var codeTable [256]byte

func init() {
	for i := range codeTable {
		codeTable[i] = invalidBase
	}
	codeTable['A'] = 0
	codeTable['C'] = 1
	codeTable['G'] = 2
	codeTable['T'] = 3
}

// DecodeByte splits one encoded byte into its base character and its
// Phred+33 quality character. Total over all byte values: every input
// maps to one of A/C/G/T and a printable quality in '!'..'`'.
func DecodeByte(b byte) (base, qual byte) {
	return baseTable[b>>6], b&qualityMask + PhredOffset
}

// DecodeChunk decodes an encoded chunk into parallel base and quality
// strings of the same length, preserving byte order.
func DecodeChunk(chunk []byte) (seq, qual []byte) {
	return AppendDecoded(nil, nil, chunk)
}

// AppendDecoded appends the decoded bases to seqDst and quality
// characters to qualDst, avoiding allocation when the slices have
// enough capacity.
func AppendDecoded(seqDst, qualDst, chunk []byte) (seq, qual []byte) {
	for _, b := range chunk {
		seqDst = append(seqDst, baseTable[b>>6])
		qualDst = append(qualDst, b&qualityMask+PhredOffset)
	}
	return seqDst, qualDst
}

// EncodeByte packs one base character and one Phred+33 quality
// character into a single encoded byte. Only A/C/G/T bases and
// qualities in '!'..'`' (Phred 0-63) are representable.
func EncodeByte(base, qual byte) (byte, error) {
	code := codeTable[base]
	if code == invalidBase {
		return 0, fmt.Errorf("cannot encode base %q: only A, C, G and T are representable", base)
	}
	if qual < PhredOffset || qual > PhredOffset+MaxQuality {
		return 0, fmt.Errorf("cannot encode quality %q: Phred score must be in 0-63", qual)
	}
	return code<<6 | (qual - PhredOffset), nil
}

// AppendEncoded appends the packed form of the seq/qual pair to dst.
// The two inputs must have equal length.
func AppendEncoded(dst, seq, qual []byte) ([]byte, error) {
	if len(seq) != len(qual) {
		return dst, fmt.Errorf("sequence length %d does not match quality length %d", len(seq), len(qual))
	}
	for i := range seq {
		b, err := EncodeByte(seq[i], qual[i])
		if err != nil {
			return dst, err
		}
		dst = append(dst, b)
	}
	return dst, nil
}
