package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSONLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json"}, &buf)

	log.Info("hidden")
	log.Warn("zero denominator", zap.Int64("subject_id", 7))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "zero denominator", entry["msg"])
	assert.EqualValues(t, 7, entry["subject_id"])
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "chatty"}, &buf)
	log.Debug("hidden")
	assert.Zero(t, buf.Len())
	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
