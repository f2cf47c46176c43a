package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/keydiff/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	log := slog.New(logger.NewPrettyHandler(buf, nil)).With("phase", "keys.diff")
	log.Info("done", "files", 3)

	assert.Equal(t, "● done phase=keys.diff files=3\n", buf.String())
}

func TestPrettyHandler_Group(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	log := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("span")
	log.Warn("slow", "ms", 12)

	assert.Equal(t, "! slow span.ms=12\n", buf.String())
}

func TestPrettyHandler_Level(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	log := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	log.Info("hidden")
	log.Error("shown")

	assert.Equal(t, "✗ shown\n", buf.String())
}

func TestPrettyHandler_QuotesValuesWithSpaces(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	log := slog.New(logger.NewPrettyHandler(buf, nil))
	log.Info("loaded", "path", "my rules.json", "rules", 2)

	assert.Equal(t, "● loaded path=\"my rules.json\" rules=2\n", buf.String())
}

func TestPrettyHandler_LevelIcons(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelInfo, "● msg\n"},
		{slog.LevelWarn, "! msg\n"},
		{slog.LevelError, "✗ msg\n"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := slog.New(logger.NewPrettyHandler(buf, nil))
			log.Log(context.Background(), tt.level, "msg")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
