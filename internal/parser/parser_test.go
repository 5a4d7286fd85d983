package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	input := `@READ_1 description
ACGTACGT
+
IIIIIIII
`
	p := New(strings.NewReader(input))
	rec, err := p.Next()
	require.NoError(t, err)

	assert.Equal(t, "READ_1 description", rec.Header)
	assert.Equal(t, []byte("ACGTACGT"), rec.Sequence)
	assert.Equal(t, []byte("IIIIIIII"), rec.Quality)
}

func TestParseMultipleRecords(t *testing.T) {
	input := `@READ_1
AAAA
+READ_1
!!!!
@READ_2
CCCC
+READ_2
####
@READ_3
GGGG
+READ_3
$$$$
`
	p := New(strings.NewReader(input))

	tests := []struct {
		header string
		seq    string
		qual   string
	}{
		{"READ_1", "AAAA", "!!!!"},
		{"READ_2", "CCCC", "####"},
		{"READ_3", "GGGG", "$$$$"},
	}

	for _, tt := range tests {
		rec, err := p.Next()
		require.NoError(t, err)
		assert.Equal(t, tt.header, rec.Header)
		assert.Equal(t, []byte(tt.seq), rec.Sequence)
		assert.Equal(t, []byte(tt.qual), rec.Quality)
	}

	_, err := p.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParseEmptyInput(t *testing.T) {
	p := New(strings.NewReader(""))
	_, err := p.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParseMalformedNoAt(t *testing.T) {
	input := `READ_1
ACGT
+
IIII
`
	p := New(strings.NewReader(input))
	_, err := p.Next()
	assert.Error(t, err)
}

func TestParseMalformedNoPlus(t *testing.T) {
	input := `@READ_1
ACGT
IIII
IIII
`
	p := New(strings.NewReader(input))
	_, err := p.Next()
	assert.Error(t, err)
}

func TestParseMalformedMismatchedLength(t *testing.T) {
	input := `@READ_1
ACGTACGT
+
III
`
	p := New(strings.NewReader(input))
	_, err := p.Next()
	assert.Error(t, err)
}

func TestParseTruncatedRecord(t *testing.T) {
	input := `@READ_1
ACGT
`
	p := New(strings.NewReader(input))
	_, err := p.Next()
	assert.Error(t, err)
}

func TestParseWindowsLineEndings(t *testing.T) {
	input := "@READ_1\r\nACGT\r\n+\r\n!!!!\r\n"
	p := New(strings.NewReader(input))

	rec, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte("ACGT"), rec.Sequence)
	assert.Equal(t, []byte("!!!!"), rec.Quality)
}
