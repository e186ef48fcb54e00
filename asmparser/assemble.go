package asmparser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a64kit/a64toolchain/encoder"
	"github.com/a64kit/a64toolchain/isa"
	"github.com/a64kit/a64toolchain/symtab"
	"github.com/a64kit/a64toolchain/token"
)

// Assemble runs the two-pass assembler (spec §4.4, §4.5): pass 1 scans src
// for label definitions, pass 2 re-reads it and writes one little-endian
// 32-bit word per executable line to out. src must support re-reading from
// the start, so callers typically pass a fresh *strings.Reader or re-opened
// file rather than a single-use stream.
func Assemble(src io.ReaderAt, size int64, out io.Writer) error {
	labels, err := scanLabels(io.NewSectionReader(src, 0, size))
	if err != nil {
		return err
	}
	return emit(io.NewSectionReader(src, 0, size), labels, out)
}

// scanLabels is assembler pass 1 (spec §4.4).
func scanLabels(src io.Reader) (*symtab.Table, error) {
	labels := symtab.New()
	scanner := bufio.NewScanner(src)
	var lineIndex uint32

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if colon := strings.IndexByte(line, ':'); colon >= 0 {
			labels.Insert(strings.TrimSpace(line[:colon]), lineIndex*isa.WordSize)
			continue
		}
		lineIndex++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("asmparser: pass 1: %w", err)
	}
	return labels, nil
}

// emit is assembler pass 2 (spec §4.5).
func emit(src io.Reader, labels *symtab.Table, out io.Writer) error {
	scanner := bufio.NewScanner(src)
	var lineIndex uint32
	var lineNumber int

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.ContainsRune(line, ':') {
			continue
		}

		currentAddr := lineIndex * isa.WordSize
		word, err := assembleLine(line, labels, currentAddr)
		if err != nil {
			return &ParseError{Line: lineNumber, Err: err}
		}
		if err := writeWordLE(out, word); err != nil {
			return fmt.Errorf("asmparser: writing line %d: %w", lineNumber, err)
		}
		lineIndex++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("asmparser: pass 2: %w", err)
	}
	return nil
}

func assembleLine(line string, labels *symtab.Table, currentAddr uint32) (uint32, error) {
	tokens := token.Tokenize(line)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("empty instruction")
	}

	if tokens[0] == "nop" && len(tokens) == 1 {
		return isa.NopWord, nil
	}
	if tokens[0] == "int" {
		if len(tokens) != 2 {
			return 0, fmt.Errorf(".int requires exactly one operand")
		}
		return parseIntDirective(tokens[1])
	}

	rewritten, err := Rewrite(tokens)
	if err != nil {
		return 0, err
	}
	in, err := Parse(rewritten, labels, currentAddr)
	if err != nil {
		return 0, err
	}
	return encoder.Encode(in)
}

func parseIntDirective(token string) (uint32, error) {
	if strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X") {
		v, err := strconv.ParseUint(token[2:], 16, 32)
		return uint32(v), err
	}
	v, err := strconv.ParseUint(token, 10, 32)
	return uint32(v), err
}

func writeWordLE(out io.Writer, word uint32) error {
	b := []byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
	_, err := out.Write(b)
	return err
}
