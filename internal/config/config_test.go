package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
telegram:
  token: "yaml-token"
api:
  base-url: "http://localhost:8080"
app:
  timezone: "Europe/Moscow"
metrics:
  addr: ":9090"
`

func Test_Parse_ShouldReadSections(t *testing.T) {
	t.Setenv(tokenEnvKey, "")
	t.Setenv(apiBaseEnvKey, "")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "yaml-token", cfg.Telegram().Token())
	assert.Equal(t, "http://localhost:8080", cfg.API().BaseURL())
	assert.Equal(t, "Europe/Moscow", cfg.App().Timezone().String())
	assert.Equal(t, defaultTimeout*time.Second, cfg.App().RequestTimeout())
	assert.Zero(t, cfg.App().SyncInterval())
	assert.Equal(t, ":9090", cfg.Metrics().Addr())
	assert.Equal(t, "finance-tracker-bot", cfg.Tracing().ServiceName())
}

func Test_Parse_EnvShouldOverrideSecrets(t *testing.T) {
	t.Setenv(tokenEnvKey, "env-token")
	t.Setenv(apiBaseEnvKey, "http://api.test")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram().Token())
	assert.Equal(t, "http://api.test", cfg.API().BaseURL())
}

func Test_Parse_ShouldRejectMissingBaseURL(t *testing.T) {
	t.Setenv(apiBaseEnvKey, "")

	_, err := Parse([]byte("app:\n  timezone: UTC\n"))
	assert.Error(t, err)
}

func Test_Parse_ShouldRejectUnknownTimezone(t *testing.T) {
	t.Setenv(apiBaseEnvKey, "")

	_, err := Parse([]byte("api:\n  base-url: http://x\napp:\n  timezone: Mars/Olympus\n"))
	assert.Error(t, err)
}

func Test_SyncInterval_ShouldBeMinutes(t *testing.T) {
	t.Setenv(apiBaseEnvKey, "")

	cfg, err := Parse([]byte("api:\n  base-url: http://x\napp:\n  sync-interval-minutes: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Minute, cfg.App().SyncInterval())
}
