package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_MatchesStockSetup(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, cfg.Workspaces)
	assert.Equal(t, []string{"dmenu", "dunst"}, cfg.FloatingClasses)
	assert.Equal(t, "#282828", cfg.Appearance.ColorScheme.Background)
	assert.Equal(t, "#cc241d", cfg.Appearance.ColorScheme.Highlight)
	assert.Equal(t, 2, cfg.Appearance.BorderPx)
	assert.Equal(t, 5, cfg.Appearance.GapPx)
	assert.True(t, cfg.Appearance.ShowBar)
	assert.True(t, cfg.Appearance.TopBar)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestDefaultConfig_Validates(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}
