package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("NETRA_LISTEN_PORT", "9090")

	loadConfig()

	assert.Equal(t, "9090", viper.GetString("listen_port"))
	assert.Equal(t, "netra-portal", viper.GetString("service_name"))
}

func TestNewLoggerLevel(t *testing.T) {
	l, err := newLogger("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNewLoggerUnknownLevelIsInfo(t *testing.T) {
	l, err := newLogger("chatty")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}

func TestRefreshIntervalRejectsShortValues(t *testing.T) {
	for _, value := range []string{"0", "30", "500ms", "-5s"} {
		t.Setenv("NETRA_REFRESH_INTERVAL", value)
		loadConfig()

		_, err := refreshInterval()
		assert.Error(t, err, value)
	}
}

func TestRefreshIntervalAcceptsDurations(t *testing.T) {
	t.Setenv("NETRA_REFRESH_INTERVAL", "45s")
	loadConfig()

	d, err := refreshInterval()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)
}
