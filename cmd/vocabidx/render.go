package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/go-vocabindex/internal/config"
	"github.com/example/go-vocabindex/internal/tensor"
	"gopkg.in/yaml.v3"
)

// arrayDoc is the structured form of an encoded array. A 1-D array is
// rendered as a single row.
type arrayDoc struct {
	Shape []int64   `json:"shape" yaml:"shape,flow"`
	Rows  [][]int64 `json:"rows" yaml:"rows,flow"`
}

func newArrayDoc(t *tensor.Tensor) (arrayDoc, error) {
	if t.Rank() == 1 {
		return arrayDoc{Shape: t.Shape(), Rows: [][]int64{t.RawData()}}, nil
	}

	rows, err := t.Rows()
	if err != nil {
		return arrayDoc{}, err
	}

	return arrayDoc{Shape: t.Shape(), Rows: rows}, nil
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	default:
		return text(w)
	}
}

func writeIntRows(w io.Writer, rows [][]int64) error {
	var b strings.Builder

	for _, row := range rows {
		b.Reset()

		for i, v := range row {
			if i > 0 {
				b.WriteByte(' ')
			}

			b.WriteString(strconv.FormatInt(v, 10))
		}

		b.WriteByte('\n')

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}

func writeSequences(w io.Writer, seqs [][]string) error {
	for _, seq := range seqs {
		if _, err := fmt.Fprintln(w, strings.Join(seq, " ")); err != nil {
			return err
		}
	}

	return nil
}
