package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	setup(&buf, "warn", false)
	log.Info().Msg("hidden")
	require.Zero(t, buf.Len(), "info is below warn")

	log.Warn().Int("turns", 3).Msg("shown")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, float64(3), entry["turns"])
}

func TestSetupFallsBackToInfo(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	setup(&buf, "chatty", false)
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	setup(&buf, " DEBUG ", false)
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
