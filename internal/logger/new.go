package logger

import (
	"fmt"
	"io"
	"strings"
)

// Backend names accepted by New.
const (
	BackendColored  = "colored"
	BackendStandard = "standard"
	BackendHclog    = "hclog"
)

// Settings selects and configures a logger backend.
type Settings struct {
	Name    string
	Backend string
	Level   Level
	Format  string
	Color   ColorMode
	Output  io.Writer
	// Caller appends the file and line of the logging call to each entry.
	Caller bool
}

// Log formats accepted in Settings.Format.
const (
	FormatText       = "text"
	FormatJSON       = "json"
	FormatJSONPretty = "json-pretty"
)

// New builds the logger described by s.
func New(s Settings) (Logger, error) {
	format := strings.ToLower(s.Format)
	jsonFormat := format == FormatJSON || format == FormatJSONPretty

	opts := []Option{WithLevel(s.Level), WithOutput(s.Output), WithColorMode(s.Color)}
	if s.Caller {
		opts = append(opts, WithCaller())
	}
	if jsonFormat && !strings.EqualFold(s.Backend, BackendHclog) {
		opts = append(opts, WithFormatter(&JSONFormatter{PrettyPrint: format == FormatJSONPretty}))
	}

	switch strings.ToLower(s.Backend) {
	case "", BackendColored:
		if jsonFormat {
			return NewStandardLogger(opts...), nil
		}
		return NewColoredLogger(opts...), nil
	case BackendStandard:
		return NewStandardLogger(opts...), nil
	case BackendHclog:
		return NewHclogLogger(s.Name, s.Level, s.Output, jsonFormat, s.Caller), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", s.Backend)
	}
}
