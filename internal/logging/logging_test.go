package logging

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/stretchr/testify/assert"
)

func testLogger() (*bolt.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(Config{Level: "trace", Format: "json", Output: buf}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"info", bolt.INFO},
		{"WARN", bolt.WARN},
		{"error", bolt.ERROR},
		{"unknown", bolt.INFO},
		{"", bolt.INFO},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("Error"))
	assert.False(t, ValidLevel("verbose"))
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: "warn", Format: "json", Output: buf})

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"component", Component("solver"), `"component":"solver"`},
		{"request id", RequestID("req-1"), `"request_id":"req-1"`},
		{"report id", ReportID("rep-1"), `"report_id":"rep-1"`},
		{"steps", Steps(23), `"steps":23`},
		{"solvable", Solvable(true), `"solvable":true`},
		{"cached", Cached(false), `"cached":false`},
		{"duration", Duration(1500 * time.Microsecond), `"duration_us":1500`},
		{"error", ErrorField(errors.New("boom")), `"error":"boom"`},
		{"str", Str("side", "left"), `"side":"left"`},
		{"int", Int("explored", 59), `"explored":59`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := testLogger()
			NewEvent(logger.Info()).Add(tt.field).Msg("test")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestErrorFieldNil(t *testing.T) {
	logger, buf := testLogger()
	NewEvent(logger.Info()).Add(ErrorField(nil)).Msg("test")
	assert.NotContains(t, buf.String(), `"error"`)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, os.Stderr, cfg.Output)
}
