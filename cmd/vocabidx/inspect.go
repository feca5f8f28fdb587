package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type inspectEntry struct {
	Index  int64  `json:"index" yaml:"index"`
	Object string `json:"object" yaml:"object"`
}

type inspectReport struct {
	Start      int64          `json:"start" yaml:"start"`
	VocabSize  int            `json:"vocab_size" yaml:"vocab_size"`
	NotInIndex int64          `json:"not_in_index" yaml:"not_in_index"`
	Width      int            `json:"width" yaml:"width"`
	Entries    []inspectEntry `json:"entries" yaml:"entries"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the vocabulary index table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, cfg, err := loadIndex()
			if err != nil {
				return err
			}

			report := inspectReport{
				Start:      idx.Start(),
				VocabSize:  idx.VocabSize(),
				NotInIndex: idx.NotInIndex(),
				Width:      idx.Width(),
				Entries:    make([]inspectEntry, 0, idx.VocabSize()),
			}

			for i, obj := range idx.All() {
				report.Entries = append(report.Entries, inspectEntry{Index: i, Object: obj})
			}

			return render(cmd.OutOrStdout(), cfg.Output.Format, report, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "start: %d\nvocab_size: %d\nnot_in_index: %d\nwidth: %d\n",
					report.Start, report.VocabSize, report.NotInIndex, report.Width); err != nil {
					return err
				}

				for _, e := range report.Entries {
					if _, err := fmt.Fprintf(w, "%d\t%s\n", e.Index, e.Object); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}
