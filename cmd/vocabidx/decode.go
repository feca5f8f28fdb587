package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/example/go-vocabindex/internal/config"
	"github.com/example/go-vocabindex/internal/safetensors"
	"github.com/example/go-vocabindex/internal/seqio"
	"github.com/example/go-vocabindex/internal/tensor"
	"github.com/example/go-vocabindex/internal/vocab"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var (
		mode  string
		input string
		name  string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode an index or binary array back into sequences",
		Long: "Reads a .safetensors array (selected by file extension) or text rows of\n" +
			"integers, one row per line, and prints the decoded sequences. Unknown\n" +
			"indexes, padding and positions not equal to 1 are dropped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			mode, err = config.NormalizeMode(mode)
			if err != nil {
				return err
			}

			idx, cfg, err := loadIndex()
			if err != nil {
				return err
			}

			var seqs [][]string
			if strings.EqualFold(filepath.Ext(input), ".safetensors") {
				seqs, err = decodeSafetensors(idx, input, name, mode)
			} else {
				seqs, err = decodeTextRows(cmd, idx, input, mode)
			}

			if err != nil {
				return err
			}

			slog.Info("decoded rows", "mode", mode, "rows", len(seqs))

			return render(cmd.OutOrStdout(), cfg.Output.Format, seqs, func(w io.Writer) error {
				return writeSequences(w, seqs)
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", config.ModeIndex, "Array kind (index|binary)")
	cmd.Flags().StringVar(&input, "input", "", "Array file: .safetensors or text rows (default stdin, text)")
	cmd.Flags().StringVar(&name, "name", "", "Tensor name inside a .safetensors file (default: first by name)")

	return cmd
}

func decodeSafetensors(idx *vocab.Index[string], path, name, mode string) ([][]string, error) {
	raw, err := loadSafetensor(path, name)
	if err != nil {
		return nil, err
	}

	dense, err := raw.Dense()
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", raw.Name, err)
	}

	slog.Debug("loaded safetensors array", "path", path, "tensor", raw.Name, "shape", raw.Shape)

	return decodeTensor(idx, dense, mode)
}

func loadSafetensor(path, name string) (*safetensors.Tensor, error) {
	if name == "" {
		return safetensors.LoadFirstTensor(path)
	}

	store, err := safetensors.OpenStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if !store.Has(name) {
		return nil, fmt.Errorf("tensor %q not in %s (available: %s)", name, path, strings.Join(store.Names(), ", "))
	}

	return store.Tensor(name)
}

func decodeTensor(idx *vocab.Index[string], t *tensor.Tensor, mode string) ([][]string, error) {
	switch t.Rank() {
	case 1:
		return [][]string{decodeRow(idx, t.RawData(), mode)}, nil
	case 2:
		if mode == config.ModeBinary {
			return idx.BinaryMatrixToObjects(t)
		}

		return idx.IndexMatrixToObjects(t)
	default:
		return nil, fmt.Errorf("%w: cannot decode shape %v (want 1-D or 2-D)", tensor.ErrRank, t.Shape())
	}
}

func decodeTextRows(cmd *cobra.Command, idx *vocab.Index[string], path, mode string) ([][]string, error) {
	rc, err := seqio.OpenInput(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rows, err := seqio.ReadIntRows(rc)
	if err != nil {
		return nil, err
	}

	seqs := make([][]string, len(rows))
	for i, row := range rows {
		seqs[i] = decodeRow(idx, row, mode)
	}

	return seqs, nil
}

func decodeRow(idx *vocab.Index[string], row []int64, mode string) []string {
	if mode == config.ModeBinary {
		return idx.BinaryVectorToObjects(row)
	}

	return idx.IndexesToObjects(row)
}
