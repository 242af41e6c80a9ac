package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/models"
)

func TestGetRuntimeConfig(t *testing.T) {
	h := newTestHandler(newFakeApp())

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/_config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var got models.PublicRuntimeConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.PublicRuntimeConfig{
		Supabase: models.PublicSupabaseConfig{
			URL: "https://abc.supabase.co",
			Key: "sb_publishable_abc",
		},
	}, got)
}

func TestGetRuntimeConfig_EmptyCredentials(t *testing.T) {
	app := newFakeApp()
	app.cfg.Supabase = config.Supabase{}
	h := newTestHandler(app)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/_config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"supabase":{"url":"","key":"","redirect":false,"cookieOptions":{"maxAge":0}}}`, rec.Body.String())
}

func TestGetDevtoolsConfig_MasksKey(t *testing.T) {
	h := newTestHandler(newFakeApp())

	rec := serve(h, httptest.NewRequest(http.MethodGet, devtoolsPrefix+"/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got config.AppConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "***", got.Supabase.Key)
	assert.Equal(t, "https://abc.supabase.co", got.Supabase.URL)
	assert.Equal(t, config.DefaultCompatibilityDate, got.CompatibilityDate)
	assert.NotContains(t, rec.Body.String(), "sb_publishable_abc")
}

func TestGetDevtoolsComponents(t *testing.T) {
	h := newTestHandler(newFakeApp())

	rec := serve(h, httptest.NewRequest(http.MethodGet, devtoolsPrefix+"/components", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Button","path":"components/ui/button/Button.vue"}]`, rec.Body.String())
}

func TestGetDevtoolsComponents_ShadcnNotInstalled(t *testing.T) {
	app := newFakeApp()
	app.components = nil
	h := newTestHandler(app)

	rec := serve(h, httptest.NewRequest(http.MethodGet, devtoolsPrefix+"/components", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
