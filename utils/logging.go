package utils

import (
	"log/slog"
	"os"
)

// jsonAttributeReplacer renames slog's default keys so that log aggregators
// (stackdriver and friends) parse the message and severity fields natively.
func jsonAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "msg" {
		a.Key = "message"
		return a
	}

	if a.Key == slog.LevelKey {
		a.Key = "severity"

		level := a.Value.Any().(slog.Level)
		switch {
		case level < slog.LevelInfo:
			a.Value = slog.StringValue("DEBUG")
		case level < slog.LevelWarn:
			a.Value = slog.StringValue("INFO")
		case level < slog.LevelError:
			a.Value = slog.StringValue("WARNING")
		default:
			a.Value = slog.StringValue("ERROR")
		}
	}

	return a
}

// NewLogger builds the process-wide logger. format is "json" for structured
// output in hosted environments, anything else gets a human-readable text log.
func NewLogger(format string) *slog.Logger {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			ReplaceAttr: jsonAttributeReplacer,
		}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))
	}
}
