package logger

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/keydiff/internal/ui/output"
	"go.trai.ch/keydiff/internal/ui/style"
)

// PrettyHandler is a slog.Handler producing human-readable, colored lines.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// role is the icon and color a level is printed with.
type role struct {
	icon  string
	color lipgloss.Color
}

var (
	errorRole = role{icon: style.Cross, color: style.Drift}
	warnRole  = role{icon: style.Warning, color: style.MissingKey}
	infoRole  = role{icon: style.Dot, color: style.Muted}
)

func roleFor(level slog.Level) role {
	switch {
	case level >= slog.LevelError:
		return errorRole
	case level >= slog.LevelWarn:
		return warnRole
	default:
		return infoRole
	}
}

// Handle writes the record as "<icon> <message> key=value...".
// Attributes are muted; values containing spaces are quoted.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	lvl := roleFor(r.Level)

	var line strings.Builder
	line.WriteString(h.out.String(lvl.icon + " " + r.Message).
		Foreground(termenv.RGBColor(string(lvl.color))).String())

	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		parts = append(parts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr(h.group, attr))
		return true
	})
	if len(parts) > 0 {
		line.WriteString(" ")
		line.WriteString(h.out.String(strings.Join(parts, " ")).
			Foreground(termenv.RGBColor(string(style.Muted))).String())
	}

	line.WriteString("\n")
	_, err := h.out.WriteString(line.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(merged, h.attrs)
	copy(merged[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: merged,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\n") {
		value = strconv.Quote(value)
	}
	return key + "=" + value
}
