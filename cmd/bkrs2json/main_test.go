package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.True(t, logger.Enabled(context.Background(), tt.wantLevel))
			assert.Equal(t, tt.debugMode, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "bkrs2json <input_directory> <output_file>", cmd.Use)
	assert.Equal(t, "Convert bkrs.info DSL dictionaries to JSON", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	for _, name := range []string{"config", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"alt-format", "format", "report"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
