package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VOCABIDX_VOCAB_PATH.
const EnvPrefix = "VOCABIDX"

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Vocab    VocabConfig  `mapstructure:"vocab"`
	Output   OutputConfig `mapstructure:"output"`
}

type VocabConfig struct {
	Path  string `mapstructure:"path"`
	Start int64  `mapstructure:"start"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps command-line flag names to their config keys.
var flagKeys = map[string]string{
	"log-level":     "log_level",
	"vocab-path":    "vocab.path",
	"vocab-start":   "vocab.start",
	"output-format": "output.format",
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Vocab: VocabConfig{
			Path:  "",
			Start: 0,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("vocab-path", defaults.Vocab.Path, "Path to the vocabulary file (whitespace-separated objects)")
	fs.Int64("vocab-start", defaults.Vocab.Start, "First index assigned to the vocabulary")
	fs.String("output-format", defaults.Output.Format, "Output format (text|json|yaml)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)

	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("vocabidx")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate normalizes enumerated fields and rejects invalid values.
func (c *Config) Validate() error {
	format, err := NormalizeFormat(c.Output.Format)
	if err != nil {
		return err
	}

	c.Output.Format = format

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Vocab.Start < 0 {
		return fmt.Errorf("vocab start must be >= 0, got %d", c.Vocab.Start)
	}

	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("vocab.path", c.Vocab.Path)
	v.SetDefault("vocab.start", c.Vocab.Start)
	v.SetDefault("output.format", c.Output.Format)
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	return nil
}
