// Package seqio reads pre-split vocabularies, object sequences and integer
// rows from text input. Items are separated by whitespace; nothing else is
// normalized.
package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyPath is returned when a file path is required but empty.
var ErrEmptyPath = errors.New("seqio: path must not be empty")

// maxLineBytes bounds a single input line.
const maxLineBytes = 16 << 20

// Stdin is the path that selects standard input in OpenInput.
const Stdin = "-"

// OpenInput opens path for reading. An empty path or "-" selects stdin,
// returned wrapped so that closing it is a no-op. A nil stdin means
// os.Stdin.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}

		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: open %s: %w", path, err)
	}

	return f, nil
}

// ReadVocabFile reads every whitespace-separated item of the file at path,
// in order, duplicates included.
func ReadVocabFile(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: open vocabulary %s: %w", path, err)
	}
	defer f.Close()

	items, err := ReadVocab(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	return items, nil
}

// ReadVocab reads every whitespace-separated item from r, in order.
func ReadVocab(r io.Reader) ([]string, error) {
	sc := newScanner(r)
	sc.Split(bufio.ScanWords)

	var items []string
	for sc.Scan() {
		items = append(items, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seqio: read vocabulary: %w", err)
	}

	return items, nil
}

// ReadSequences reads one sequence per line. A blank line is an empty
// sequence.
func ReadSequences(r io.Reader) ([][]string, error) {
	sc := newScanner(r)

	seqs := [][]string{}
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if fields == nil {
			fields = []string{}
		}

		seqs = append(seqs, fields)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seqio: read sequences: %w", err)
	}

	return seqs, nil
}

// ReadIntRows reads one row of base-10 integers per line. Rows may differ
// in length; a blank line is an empty row.
func ReadIntRows(r io.Reader) ([][]int64, error) {
	sc := newScanner(r)

	rows := [][]int64{}
	line := 0

	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		row := make([]int64, len(fields))

		for i, field := range fields {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("seqio: line %d column %d: %w", line, i+1, err)
			}

			row[i] = v
		}

		rows = append(rows, row)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seqio: read rows: %w", err)
	}

	return rows, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return sc
}
