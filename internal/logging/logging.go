// Package logging builds the structured logger used by the wyhash command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ServiceName is attached to every record.
const ServiceName = "wyhash"

const attrService = "service"

// ErrUnknownFormat is returned for a handler format other than text or json.
var ErrUnknownFormat = errors.New("unknown log format")

// ParseLevel maps debug, info, warn and error (case-insensitive) to an
// [slog.Level].
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}

	return level, nil
}

// New returns a logger writing text or JSON records to w at the given level.
// The service name is pre-attached so it stays at the top level when groups
// are used.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}

	var inner slog.Handler
	switch strings.ToLower(format) {
	case "json":
		inner = slog.NewJSONHandler(w, handlerOpts)
	case "", "text":
		inner = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	handler := inner.WithAttrs([]slog.Attr{slog.String(attrService, ServiceName)})

	return slog.New(handler), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
