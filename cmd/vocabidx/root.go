package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/example/go-vocabindex/internal/config"
	"github.com/example/go-vocabindex/internal/seqio"
	"github.com/example/go-vocabindex/internal/vocab"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "vocabidx",
		Short:         "Map vocabulary objects to integer indexes and one-hot arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}

			if err := loaded.Validate(); err != nil {
				return err
			}

			activeCfg = loaded
			setupLogger(loaded.LogLevel)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newDecodeCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if activeCfg.Vocab.Path == "" {
		return config.Config{}, errors.New("vocabulary path not configured (set --vocab-path or vocab.path)")
	}

	return activeCfg, nil
}

// loadIndex builds the vocabulary index named by the active config.
func loadIndex() (*vocab.Index[string], config.Config, error) {
	cfg, err := requireConfig()
	if err != nil {
		return nil, config.Config{}, err
	}

	items, err := seqio.ReadVocabFile(cfg.Vocab.Path)
	if err != nil {
		return nil, config.Config{}, err
	}

	idx := vocab.New(items, cfg.Vocab.Start)

	slog.Debug("vocabulary loaded",
		"path", cfg.Vocab.Path,
		"items", len(items),
		"vocab_size", idx.VocabSize(),
		"start", idx.Start(),
	)

	return idx, cfg, nil
}
