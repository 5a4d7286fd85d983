// fqbin decodes binary-encoded DNA reads into FASTQ text and packs
// FASTQ back into the binary encoding (one byte per base: bits 7-6
// carry the base code, bits 5-0 the Phred quality).
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/vertti/fqbin/internal/codec"
	"github.com/vertti/fqbin/internal/decode"
	"github.com/vertti/fqbin/internal/parser"
)

var version = "dev"

const (
	exitSuccess = 0
	exitError   = 1
)

type config struct {
	encode     bool
	inputFile  string
	outputFile string
	readLen    int
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, done := parseFlags()
	if done {
		return exitSuccess
	}

	output, cleanup, err := openOutput(cfg.outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	defer cleanup()

	if err := execute(cfg, output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}

	return exitSuccess
}

func parseFlags() (config, bool) {
	var cfg config
	var showVersion, showHelp bool

	flag.BoolVar(&cfg.encode, "e", false, "encode mode (FASTQ in, binary out)")
	flag.StringVar(&cfg.inputFile, "i", "", "input file (encode mode default: stdin)")
	flag.StringVar(&cfg.outputFile, "o", "", "output file (default: stdout)")
	flag.IntVar(&cfg.readLen, "l", 0, "read length in bases (required for decode)")
	flag.BoolVar(&showVersion, "version", false, "show version and exit")
	flag.BoolVar(&showHelp, "h", false, "show help")

	flag.Usage = usage
	flag.Parse()

	if showHelp {
		flag.Usage()
		return cfg, true
	}

	if showVersion {
		fmt.Printf("fqbin version %s\n", version)
		return cfg, true
	}

	// Handle positional argument
	if flag.NArg() > 0 && cfg.inputFile == "" {
		cfg.inputFile = flag.Arg(0)
	}

	return cfg, false
}

func usage() {
	fmt.Fprintf(os.Stderr, `fqbin - Binary DNA read <-> FASTQ converter

Usage:
  fqbin -l LENGTH [-i reads.bin] [-o out.fastq]   Decode binary reads to FASTQ
  fqbin -e [-i in.fastq] [-o reads.bin]           Pack FASTQ into binary reads

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  fqbin -l 100 reads.bin                   Decode to stdout
  fqbin -l 100 -i reads.bin.gz -o out.fq   Decode gzip input to a file
  fqbin -e -i sample.fastq -o reads.bin    Pack FASTQ
  fqbin -e -i sample.fq -o reads.bin.gz    Pack FASTQ into gzip output
`)
}

func execute(cfg config, output io.Writer) error {
	if cfg.encode {
		input, cleanup, err := openInput(cfg.inputFile)
		if err != nil {
			return err
		}
		defer cleanup()
		return encodeStream(input, output)
	}

	if cfg.inputFile == "" {
		return errors.New("decode mode needs an input file (-i)")
	}
	return decodeToFASTQ(cfg.inputFile, cfg.readLen, output)
}

// decodeToFASTQ runs one decode pass over the binary source and
// writes each record as a four-line FASTQ block.
func decodeToFASTQ(path string, readLen int, output io.Writer) error {
	session, err := decode.NewSession(path, readLen)
	if err != nil {
		return err
	}

	records := session.Records()
	for {
		rec, err := records.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := rec.Write(output); err != nil {
			return err
		}
	}
}

// encodeStream parses FASTQ from input and writes the packed binary
// form of every record to output.
func encodeStream(input io.Reader, output io.Writer) error {
	p := parser.New(input)
	buf := make([]byte, 0, 512)

	for {
		rec, err := p.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parsing FASTQ: %w", err)
		}

		buf, err = codec.AppendEncoded(buf[:0], rec.Sequence, rec.Quality)
		if err != nil {
			return fmt.Errorf("read %q: %w", rec.Header, err)
		}
		if _, err := output.Write(buf); err != nil {
			return err
		}
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return wrapInputMaybeGzip(os.Stdin, func() {})
	}

	f, err := os.Open(path) //nolint:gosec // CLI tool needs to open user-specified files
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open input: %w", err)
	}
	return wrapInputMaybeGzip(f, func() { _ = f.Close() })
}

func wrapInputMaybeGzip(in io.Reader, closeInput func()) (io.Reader, func(), error) {
	br := bufio.NewReaderSize(in, 1<<20)
	hasMagic, err := inputHasGzipMagic(br)
	if err != nil {
		closeInput()
		return nil, nil, fmt.Errorf("cannot inspect input: %w", err)
	}

	if hasMagic {
		gz, err := gzip.NewReader(br)
		if err != nil {
			closeInput()
			return nil, nil, fmt.Errorf("cannot open gzip input: %w", err)
		}
		return gz, func() {
			_ = gz.Close()
			closeInput()
		}, nil
	}

	return br, closeInput, nil
}

func inputHasGzipMagic(br *bufio.Reader) (bool, error) {
	header, err := br.Peek(2)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return len(header) == 2 && header[0] == 0x1f && header[1] == 0x8b, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		bw := bufio.NewWriterSize(os.Stdout, 1<<20)
		return bw, func() { _ = bw.Flush() }, nil
	}

	f, err := os.Create(path) //nolint:gosec // CLI tool needs to create user-specified files
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create output: %w", err)
	}
	bw := bufio.NewWriterSize(f, 1<<20)

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz := gzip.NewWriter(bw)
		return gz, func() {
			_ = gz.Close()
			_ = bw.Flush()
			_ = f.Close()
		}, nil
	}

	return bw, func() { _ = bw.Flush(); _ = f.Close() }, nil
}
