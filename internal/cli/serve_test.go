package cli

import (
	"testing"

	"github.com/remedia-ai/remedia/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPortFlag_ExplicitFlagOverridesConfig(t *testing.T) {
	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Set("port", "9191"))

	cfg := &config.Config{Port: "9090"}
	applyPortFlag(cmd, cfg)

	assert.Equal(t, "9191", cfg.Port)
}

func TestApplyPortFlag_ExplicitDefaultValueOverridesConfig(t *testing.T) {
	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Set("port", "8080"))

	cfg := &config.Config{Port: "9090"}
	applyPortFlag(cmd, cfg)

	assert.Equal(t, "8080", cfg.Port)
}

func TestApplyPortFlag_UnsetFlagKeepsConfig(t *testing.T) {
	cmd := ServeCmd()

	cfg := &config.Config{Port: "9090"}
	applyPortFlag(cmd, cfg)

	assert.Equal(t, "9090", cfg.Port)
}
