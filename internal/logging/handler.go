// Package logging provides the slog handler used for operator diagnostics.
// Replay failures are logged through it and never abort a run.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Handler is a slog.Handler that prints one compact JSON object per line.
// It is geared toward CLI diagnostics, not throughput.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler

	attrs  []prefixedAttr
	groups []string
}

// prefixedAttr is an attribute bound to the group prefix that was open when
// it was added, so later WithGroup calls do not re-qualify it.
type prefixedAttr struct {
	prefix string
	attr   slog.Attr
}

// NewHandler creates a handler writing to w at the given minimum level.
// A nil level defaults to slog.LevelInfo.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
	}
}

// NewLogger creates a slog.Logger backed by a Handler.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(w, level))
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	payload := make(map[string]any, 4+r.NumAttrs()+len(h.attrs))

	when := r.Time
	if when.IsZero() {
		when = time.Now()
	}
	payload["time"] = when.Format(time.RFC3339)
	payload["level"] = r.Level.String()
	payload["msg"] = r.Message

	for _, pa := range h.attrs {
		putAttr(payload, pa.prefix, pa.attr)
	}
	recordPrefix := h.prefix()
	r.Attrs(func(attr slog.Attr) bool {
		putAttr(payload, recordPrefix, attr)
		return true
	})

	line, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(line)
	return err
}

// prefix returns the dotted key prefix for the currently open groups.
func (h *Handler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// putAttr stores one attribute under its prefixed key, recursing into groups.
func putAttr(payload map[string]any, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := prefix + attr.Key
	if attr.Value.Kind() == slog.KindGroup {
		for _, nested := range attr.Value.Group() {
			putAttr(payload, key+".", nested)
		}
		return
	}

	payload[key] = attr.Value.Any()
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]prefixedAttr{}, h.attrs...)
	prefix := h.prefix()
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, prefixedAttr{prefix: prefix, attr: attr})
	}
	return &clone
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}
