package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	ModeIndex  = "index"
	ModeBinary = "binary"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrUnknownMode   = errors.New("unknown encoding mode")
)

// NormalizeFormat canonicalizes an output format name. Empty means text.
func NormalizeFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	switch format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (expected %s|%s|%s)", ErrUnknownFormat, raw, FormatText, FormatJSON, FormatYAML)
	}
}

// NormalizeMode canonicalizes an encoding mode name. Empty means index.
func NormalizeMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "", ModeIndex, "indexes":
		return ModeIndex, nil
	case ModeBinary, "onehot", "one-hot":
		return ModeBinary, nil
	default:
		return "", fmt.Errorf("%w %q (expected %s|%s)", ErrUnknownMode, raw, ModeIndex, ModeBinary)
	}
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}
