package slogpretty

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With("component", "test")

	log.Debug("hidden")
	log.Error("failed to write", "error", errors.New("disk full"), "id", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "failed to write")
	assert.Contains(t, out, `"error": "disk full"`)
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"id": 42`)
}

func TestPrettyHandler_Groups(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}
	log := slog.New(opts.NewPrettyHandler(&buf)).
		With("component", "api").
		WithGroup("req").
		With("method", "GET")

	log.Info("served", "status", 200, slog.Group("user", "id", 7))

	out := buf.String()
	assert.Contains(t, out, `"component": "api"`)
	assert.Contains(t, out, `"req.method": "GET"`)
	assert.Contains(t, out, `"req.status": 200`)
	assert.Contains(t, out, `"req.user.id": 7`)
	assert.NotContains(t, out, `"status": 200`)
}

func TestPrettyHandler_Enabled(t *testing.T) {
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelWarn}}
	h := opts.NewPrettyHandler(&bytes.Buffer{})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}
