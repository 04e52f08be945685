package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tefway/ferramentas/validator"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := validator.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "localhost:10000", cfg.HTTPAddr)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", "localhost:9999")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg, err := validator.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "localhost:9999", cfg.HTTPAddr)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
