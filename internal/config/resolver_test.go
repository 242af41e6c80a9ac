package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shadbase/internal/metrics"
)

func writeDotenv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolve_CredentialsFromEnvironment(t *testing.T) {
	cfg := NewResolver(WithEnvironment(map[string]string{
		"SUPABASE_URL": "https://x.example",
		"SUPABASE_KEY": "abc123",
	})).Resolve()

	assert.Equal(t, Supabase{
		URL:           "https://x.example",
		Key:           "abc123",
		Redirect:      false,
		CookieOptions: CookieOptions{MaxAge: 0},
	}, cfg.Supabase)
}

func TestResolve_CredentialsAbsent(t *testing.T) {
	var cfg AppConfig
	require.NotPanics(t, func() {
		cfg = NewResolver(WithEnvironment(nil)).Resolve()
	})

	assert.Equal(t, Supabase{}, cfg.Supabase)
}

func TestResolve_ValuesAreNotTransformed(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
	}{
		{name: "surrounding whitespace", url: "  https://x.example/ ", key: "\tabc123\n"},
		{name: "trailing slash and path", url: "https://x.example/rest/", key: "sb_publishable_XYZ"},
		{name: "set but empty", url: "", key: ""},
		{name: "not a url at all", url: "not a url", key: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewResolver(WithEnvironment(map[string]string{
				"SUPABASE_URL": tt.url,
				"SUPABASE_KEY": tt.key,
			})).Resolve()

			assert.Equal(t, tt.url, cfg.Supabase.URL)
			assert.Equal(t, tt.key, cfg.Supabase.Key)
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := NewResolver(WithEnvironment(map[string]string{
		"SUPABASE_URL": "https://x.example",
		"SUPABASE_KEY": "abc123",
	}))

	first := r.Resolve()
	second := r.Resolve()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Resolve() mismatch (-first +second):\n%s", diff)
	}
}

func TestResolve_StaticFieldsIgnoreEnvironment(t *testing.T) {
	environments := []map[string]string{
		nil,
		{"SUPABASE_URL": "https://x.example", "SUPABASE_KEY": "abc123"},
		{
			"SUPABASE_REDIRECT":       "true",
			"SUPABASE_COOKIE_MAX_AGE": "3600",
			"NUXT_SHADCN_PREFIX":      "Ui",
			"CSS":                     "other.css",
			"MODULES":                 "x",
		},
	}

	want := staticConfig()
	for _, environment := range environments {
		cfg := NewResolver(WithEnvironment(environment)).Resolve()

		assert.Equal(t, want.CompatibilityDate, cfg.CompatibilityDate)
		assert.Equal(t, want.Devtools, cfg.Devtools)
		assert.Equal(t, want.CSS, cfg.CSS)
		assert.Equal(t, want.Vite, cfg.Vite)
		assert.Equal(t, want.Modules, cfg.Modules)
		assert.Equal(t, want.Shadcn, cfg.Shadcn)
		assert.False(t, cfg.Supabase.Redirect)
		assert.Zero(t, cfg.Supabase.CookieOptions.MaxAge)
	}
}

func TestResolve_StaticLiterals(t *testing.T) {
	cfg := NewResolver(WithEnvironment(nil)).Resolve()

	assert.Equal(t, "2025-07-15", cfg.CompatibilityDate)
	assert.True(t, cfg.Devtools.Enabled)
	assert.Equal(t, []string{"~/assets/css/tailwind.css"}, cfg.CSS)
	assert.Equal(t, []string{"tailwindcss"}, cfg.Vite.Plugins)
	assert.Equal(t, []string{"shadcn-nuxt", "@nuxtjs/supabase"}, cfg.Modules)
	assert.Equal(t, "", cfg.Shadcn.Prefix)
	assert.Equal(t, "./components/ui", cfg.Shadcn.ComponentDir)
}

func TestResolve_ResultsShareNoSlices(t *testing.T) {
	r := NewResolver(WithEnvironment(nil))
	first := r.Resolve()
	second := r.Resolve()

	first.Modules[0] = "mutated"
	first.CSS[0] = "mutated"
	first.Vite.Plugins[0] = "mutated"

	assert.Equal(t, ModuleShadcn, second.Modules[0])
	assert.Equal(t, DefaultStylesheet, second.CSS[0])
	assert.Equal(t, PluginTailwindCSS, second.Vite.Plugins[0])
}

func TestWithEnvironment_CopiesMap(t *testing.T) {
	environment := map[string]string{"SUPABASE_URL": "https://before.example"}
	r := NewResolver(WithEnvironment(environment))

	environment["SUPABASE_URL"] = "https://after.example"

	assert.Equal(t, "https://before.example", r.Resolve().Supabase.URL)
}

func TestResolveAppConfig_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://proc.example")
	t.Setenv("SUPABASE_KEY", "proc-key")

	cfg := ResolveAppConfig()

	assert.Equal(t, "https://proc.example", cfg.Supabase.URL)
	assert.Equal(t, "proc-key", cfg.Supabase.Key)
}

func TestResolveAppConfig_ProcessEnvironmentUnset(t *testing.T) {
	cfg := ResolveAppConfig()

	assert.Empty(t, cfg.Supabase.URL)
	assert.Empty(t, cfg.Supabase.Key)
}

// ── dotenv ───────────────────────────────────────────────────────────────────

func TestWithDotenv_FillsMissingVariables(t *testing.T) {
	path := writeDotenv(t, "SUPABASE_URL=https://dotenv.example\nSUPABASE_KEY=dotenv-key\n")

	cfg := NewResolver(WithEnvironment(nil), WithDotenv(path)).Resolve()

	assert.Equal(t, "https://dotenv.example", cfg.Supabase.URL)
	assert.Equal(t, "dotenv-key", cfg.Supabase.Key)
}

func TestWithDotenv_EnvironmentWins(t *testing.T) {
	path := writeDotenv(t, "SUPABASE_URL=https://dotenv.example\nSUPABASE_KEY=dotenv-key\n")

	cfg := NewResolver(
		WithEnvironment(map[string]string{"SUPABASE_KEY": "env-key"}),
		WithDotenv(path),
	).Resolve()

	assert.Equal(t, "https://dotenv.example", cfg.Supabase.URL)
	assert.Equal(t, "env-key", cfg.Supabase.Key)
}

func TestWithDotenv_FirstFileWins(t *testing.T) {
	first := writeDotenv(t, "SUPABASE_URL=https://first.example\n")
	second := writeDotenv(t, "SUPABASE_URL=https://second.example\nSUPABASE_KEY=second-key\n")

	cfg := NewResolver(WithEnvironment(nil), WithDotenv(first, second)).Resolve()

	assert.Equal(t, "https://first.example", cfg.Supabase.URL)
	assert.Equal(t, "second-key", cfg.Supabase.Key)
}

func TestWithDotenv_MissingFileSkipped(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	cfg := NewResolver(
		WithEnvironment(map[string]string{"SUPABASE_URL": "https://x.example"}),
		WithDotenv(missing),
	).Resolve()

	assert.Equal(t, "https://x.example", cfg.Supabase.URL)
	assert.Empty(t, cfg.Supabase.Key)
}

func TestWithDotenv_UnreadableFileSkipped(t *testing.T) {
	dir := t.TempDir()

	var cfg AppConfig
	require.NotPanics(t, func() {
		cfg = NewResolver(WithEnvironment(nil), WithDotenv(dir)).Resolve()
	})

	assert.Empty(t, cfg.Supabase.URL)
	assert.Equal(t, DefaultCompatibilityDate, cfg.CompatibilityDate)
}

func TestWithDotenv_DoesNotTouchProcessEnvironment(t *testing.T) {
	path := writeDotenv(t, "SUPABASE_URL=https://dotenv.example\n")

	NewResolver(WithDotenv(path)).Resolve()

	_, ok := os.LookupEnv("SUPABASE_URL")
	assert.False(t, ok)
}

func TestEnvironMap(t *testing.T) {
	got := environMap([]string{"A=1", "B=", "C=x=y", "D"})

	assert.Equal(t, map[string]string{"A": "1", "B": "", "C": "x=y", "D": ""}, got)
}

func TestResolve_CountsResolutions(t *testing.T) {
	counter := metrics.ConfigResolutionsTotal.WithLabelValues(metrics.ResultOK)
	before := testutil.ToFloat64(counter)

	NewResolver(WithEnvironment(nil)).Resolve()

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
