package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/example/go-vocabindex/internal/config"
	"github.com/example/go-vocabindex/internal/safetensors"
	"github.com/example/go-vocabindex/internal/seqio"
	"github.com/example/go-vocabindex/internal/tensor"
	"github.com/example/go-vocabindex/internal/vocab"
	"github.com/spf13/cobra"
)

var writeSafetensors = func(path, name string, t *tensor.Tensor) error {
	return safetensors.WriteFile(path, []safetensors.Tensor{safetensors.FromTensor(name, t)})
}

func newEncodeCmd() *cobra.Command {
	var (
		mode   string
		input  string
		out    string
		name   string
		single bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode whitespace-separated sequences into an index or binary array",
		Long: "Reads one sequence per line and encodes the batch into a padded index matrix\n" +
			"(--mode index) or a one-hot matrix (--mode binary). With --single the whole\n" +
			"input is encoded as one sequence into a 1-D array.",
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

			seqs, err := readSequences(cmd, input)
			if err != nil {
				return err
			}

			encoded := encodeBatch(idx, seqs, mode, single)

			slog.Info("encoded sequences",
				"mode", mode,
				"sequences", len(seqs),
				"shape", encoded.Shape(),
				"elements", encoded.ElemCount(),
			)

			if strings.TrimSpace(out) != "" {
				if name == "" {
					name = mode
				}

				if err := writeSafetensors(out, name, encoded); err != nil {
					return fmt.Errorf("write encoded array: %w", err)
				}

				slog.Info("wrote safetensors", "path", out, "tensor", name)

				return nil
			}

			doc, err := newArrayDoc(encoded)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), cfg.Output.Format, doc, func(w io.Writer) error {
				return writeIntRows(w, doc.Rows)
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", config.ModeIndex, "Encoding mode (index|binary)")
	cmd.Flags().StringVar(&input, "input", "", "Sequence file, one sequence per line (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "Write the encoded array to this .safetensors file instead of stdout")
	cmd.Flags().StringVar(&name, "name", "", "Tensor name used with --out (default: the mode)")
	cmd.Flags().BoolVar(&single, "single", false, "Encode the whole input as one sequence into a 1-D array")

	return cmd
}

func encodeBatch(idx *vocab.Index[string], seqs [][]string, mode string, single bool) *tensor.Tensor {
	if single {
		seq := slices.Concat(seqs...)
		if mode == config.ModeBinary {
			return idx.ObjectsToBinaryVector(seq)
		}

		return idx.ObjectsToIndexes(seq)
	}

	if mode == config.ModeBinary {
		return idx.ObjectsToBinaryMatrix(seqs)
	}

	return idx.ObjectsToIndexMatrix(seqs)
}

func readSequences(cmd *cobra.Command, path string) ([][]string, error) {
	rc, err := seqio.OpenInput(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return seqio.ReadSequences(rc)
}
