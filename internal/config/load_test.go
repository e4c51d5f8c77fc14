package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 20, cfg.Study.SessionCap)
	assert.Equal(t, 5, cfg.Study.RecencyWindow)
	assert.Equal(t, 3, cfg.Study.DistractorCount)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WORDVAULT_SERVER_PORT", "9090")
	t.Setenv("WORDVAULT_SERVER_LOG_LEVEL", "debug")
	t.Setenv("WORDVAULT_DATABASE_DRIVER", "postgres")
	t.Setenv("WORDVAULT_DATABASE_URL", "postgres://localhost:5432/wordvault")
	t.Setenv("WORDVAULT_STUDY_SESSION_CAP", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost:5432/wordvault", cfg.Database.URL)
	assert.Equal(t, 10, cfg.Study.SessionCap)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		env   string
		value string
	}{
		{"bad log level", "WORDVAULT_SERVER_LOG_LEVEL", "verbose"},
		{"bad driver", "WORDVAULT_DATABASE_DRIVER", "mysql"},
		{"zero session cap", "WORDVAULT_STUDY_SESSION_CAP", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.env, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
