package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shadbase/models"
)

func testConfig() AppConfig {
	return NewResolver(WithEnvironment(map[string]string{
		"SUPABASE_URL": "https://x.example",
		"SUPABASE_KEY": "abc123",
	})).Resolve()
}

func TestClone_IsDeep(t *testing.T) {
	cfg := testConfig()
	clone := cfg.Clone()

	clone.CSS[0] = "changed.css"
	clone.Modules[1] = "changed"
	clone.Vite.Plugins[0] = "changed"

	assert.Equal(t, DefaultStylesheet, cfg.CSS[0])
	assert.Equal(t, ModuleSupabase, cfg.Modules[1])
	assert.Equal(t, PluginTailwindCSS, cfg.Vite.Plugins[0])
}

func TestRedacted_MasksKey(t *testing.T) {
	cfg := testConfig()
	redacted := cfg.Redacted()

	assert.Equal(t, "***", redacted.Supabase.Key)
	assert.Equal(t, "https://x.example", redacted.Supabase.URL)
	assert.Equal(t, "abc123", cfg.Supabase.Key, "original must stay untouched")
}

func TestRedacted_KeepsEmptyKeyVisible(t *testing.T) {
	cfg := NewResolver(WithEnvironment(nil)).Resolve()
	assert.Empty(t, cfg.Redacted().Supabase.Key)
}

func TestPublicRuntimeConfig(t *testing.T) {
	got := testConfig().PublicRuntimeConfig()

	assert.Equal(t, models.PublicRuntimeConfig{
		Supabase: models.PublicSupabaseConfig{
			URL: "https://x.example",
			Key: "abc123",
		},
	}, got)
}

// TestAppConfig_JSONKeys verifies the printed layout of the configuration.
func TestAppConfig_JSONKeys(t *testing.T) {
	data, err := json.Marshal(testConfig())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "2025-07-15", decoded["compatibilityDate"])
	assert.Equal(t, map[string]any{"enabled": true}, decoded["devtools"])
	assert.Equal(t, map[string]any{"prefix": "", "componentDir": "./components/ui"}, decoded["shadcn"])

	supabase, ok := decoded["supabase"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"maxAge": float64(0)}, supabase["cookieOptions"])
	assert.Equal(t, false, supabase["redirect"])
}
