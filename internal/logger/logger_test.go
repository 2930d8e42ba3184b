package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			SetLevel(tt.level)
			require.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}

	SetLevel("debug")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "production")

	log.Warn().Str("key", "value").Msg("json output")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "debt-ledger", event["service"])
	assert.Equal(t, "production", event["env"])
	assert.Equal(t, "value", event["key"])
	assert.Contains(t, event[zerolog.CallerFieldName], "logger_test.go")
	assert.NotEmpty(t, event[zerolog.TimestampFieldName])
}

func TestSetup(t *testing.T) {
	Setup("warn", "production")
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Setup("debug", "development")
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
