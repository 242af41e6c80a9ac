package components

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/models"
)

func touch(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<template><slot /></template>\n"), 0o644))
}

func TestComponentName(t *testing.T) {
	tests := []struct {
		prefix string
		file   string
		want   string
	}{
		{prefix: "", file: "Button.vue", want: "Button"},
		{prefix: "Ui", file: "Button.vue", want: "UiButton"},
		{prefix: "", file: "dropdown-menu.vue", want: "DropdownMenu"},
		{prefix: "", file: "DropdownMenuItem.vue", want: "DropdownMenuItem"},
		{prefix: "Shad", file: "alert_dialog.vue", want: "ShadAlertDialog"},
		{prefix: "", file: "button/Button.vue", want: "Button"},
		{prefix: "", file: "-.vue", want: ""},
		{prefix: "Ui", file: "_.vue", want: ""},
		{prefix: "Ui", file: "- _.vue", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, ComponentName(tt.prefix, tt.file))
		})
	}
}

// ── Scan ─────────────────────────────────────────────────────────────────────

func TestScan_DiscoversSortedComponents(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "components/ui/button/Button.vue")
	touch(t, root, "components/ui/button/index.ts")
	touch(t, root, "components/ui/card/Card.vue")
	touch(t, root, "components/ui/card/CardHeader.vue")
	touch(t, root, "components/ui/.cache/Stale.vue")
	touch(t, root, "components/ui/accordion/.Draft.vue")

	got, err := Scan(root, "./components/ui", "")

	require.NoError(t, err)
	assert.Equal(t, []models.Component{
		{Name: "Button", Path: "components/ui/button/Button.vue"},
		{Name: "Card", Path: "components/ui/card/Card.vue"},
		{Name: "CardHeader", Path: "components/ui/card/CardHeader.vue"},
	}, got)
}

func TestScan_SkipsNamesWithoutWords(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "components/ui/button/Button.vue")
	touch(t, root, "components/ui/button/-.vue")
	touch(t, root, "components/ui/card/_.vue")

	got, err := Scan(root, "./components/ui", "Ui")

	require.NoError(t, err)
	assert.Equal(t, []models.Component{
		{Name: "UiButton", Path: "components/ui/button/Button.vue"},
	}, got)
}

func TestScan_AppliesPrefix(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "components/ui/button/Button.vue")

	got, err := Scan(root, "./components/ui", "Ui")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "UiButton", got[0].Name)
}

func TestScan_MissingDirIsEmpty(t *testing.T) {
	got, err := Scan(t.TempDir(), "./components/ui", "")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScan_FileInsteadOfDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "components/ui")

	_, err := Scan(root, "./components/ui", "")
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestScan_DuplicateNames(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "components/ui/a/Button.vue")
	touch(t, root, "components/ui/b/button.vue")

	_, err := Scan(root, "./components/ui", "")
	assert.ErrorIs(t, err, ErrDuplicateComponent)
}

// ── Registry ─────────────────────────────────────────────────────────────────

func TestRegistry_RefreshWritesManifest(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "components/ui/button/Button.vue")

	r := NewRegistry(root, config.Shadcn{Prefix: "Ui", ComponentDir: "./components/ui"}, logger.Nop())
	require.NoError(t, r.Refresh())

	c, ok := r.Lookup("UiButton")
	require.True(t, ok)
	assert.Equal(t, "components/ui/button/Button.vue", c.Path)

	data, err := os.ReadFile(filepath.Join(root, ManifestPath))
	require.NoError(t, err)

	var manifest models.ComponentManifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "Ui", manifest.Prefix)
	assert.Equal(t, "./components/ui", manifest.Dir)
	assert.Equal(t, r.Components(), manifest.Components)
}

func TestRegistry_FailedRefreshKeepsPreviousSet(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "components/ui/button/Button.vue")

	r := NewRegistry(root, config.Shadcn{ComponentDir: "./components/ui"}, nil)
	require.NoError(t, r.Refresh())

	touch(t, root, "components/ui/other/button.vue")
	assert.ErrorIs(t, r.Refresh(), ErrDuplicateComponent)

	assert.Len(t, r.Components(), 1)
	_, ok := r.Lookup("Button")
	assert.True(t, ok)
}

func TestRegistry_ComponentsReturnsCopy(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "components/ui/button/Button.vue")

	r := NewRegistry(root, config.Shadcn{ComponentDir: "./components/ui"}, nil)
	require.NoError(t, r.Refresh())

	got := r.Components()
	got[0].Name = "Changed"

	assert.Equal(t, "Button", r.Components()[0].Name)
}

// ── Watch ────────────────────────────────────────────────────────────────────

func TestRegistry_WatchPicksUpNewComponents(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "components/ui"), 0o755))

	r := NewRegistry(root, config.Shadcn{ComponentDir: "./components/ui"}, logger.Nop())
	require.NoError(t, r.Refresh())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.watch(ctx, 20*time.Millisecond, nil)
	}()

	n := 0
	require.Eventually(t, func() bool {
		n++
		dir := filepath.Join(root, "components/ui", fmt.Sprintf("card%d", n))
		_ = os.MkdirAll(dir, 0o755)
		_ = os.WriteFile(filepath.Join(dir, fmt.Sprintf("Card%d.vue", n)), []byte("<template />"), 0o644)
		return len(r.Components()) > 0
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestRegistry_WatchPicksUpDirCreatedLater(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	root := t.TempDir()
	r := NewRegistry(root, config.Shadcn{Prefix: "Ui", ComponentDir: "./components/ui"}, logger.Nop())
	require.NoError(t, r.Refresh())
	require.Empty(t, r.Components())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.watch(ctx, 20*time.Millisecond, nil)
	}()

	n := 0
	require.Eventually(t, func() bool {
		n++
		dir := filepath.Join(root, "components/ui", fmt.Sprintf("button%d", n))
		_ = os.MkdirAll(dir, 0o755)
		_ = os.WriteFile(filepath.Join(dir, fmt.Sprintf("Button%d.vue", n)), []byte("<template />"), 0o644)
		return len(r.Components()) > 0
	}, 5*time.Second, 100*time.Millisecond)

	_, ok := r.Lookup("UiButton1")
	assert.True(t, ok)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestNearestExistingDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "components"), 0o755))
	touch(t, root, "file.vue")

	assert.Equal(t, filepath.Join(root, "components"), nearestExistingDir(filepath.Join(root, "components/ui")))
	assert.Equal(t, root, nearestExistingDir(filepath.Join(root, "missing/deeper/ui")))
	assert.Equal(t, root, nearestExistingDir(filepath.Join(root, "file.vue")))
	assert.Equal(t, root, nearestExistingDir(root))
}
