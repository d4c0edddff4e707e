package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"seat-finder/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		enabled zapcore.Level
		wantErr bool
	}{
		{
			name:    "default level",
			cfg:     config.LoggingConfig{},
			enabled: zapcore.InfoLevel,
		},
		{
			name:    "development debug",
			cfg:     config.LoggingConfig{Level: "debug", Development: true},
			enabled: zapcore.DebugLevel,
		},
		{
			name:    "production warn",
			cfg:     config.LoggingConfig{Level: "warn"},
			enabled: zapcore.WarnLevel,
		},
		{
			name:    "bad level",
			cfg:     config.LoggingConfig{Level: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestProgress(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	progress := Progress(zap.New(core))

	progress("Decode complete")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Decode complete", logs.All()[0].Message)
}
