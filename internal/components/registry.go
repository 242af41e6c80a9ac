package components

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/google/renameio/v2"

	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/metrics"
	"github.com/MKhiriev/shadbase/models"
)

// ManifestPath is the manifest location relative to the project root.
const ManifestPath = ".nuxt/components.json"

// Registry holds the components of the last successful scan. It is safe for
// concurrent use.
type Registry struct {
	root string
	cfg  config.Shadcn

	mu         sync.RWMutex
	components []models.Component
	byName     map[string]models.Component

	logger *logger.Logger
}

// NewRegistry returns an empty registry for the component directory described
// by cfg, resolved against root. Call [Registry.Refresh] to populate it.
func NewRegistry(root string, cfg config.Shadcn, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}

	return &Registry{
		root:       root,
		cfg:        cfg,
		components: []models.Component{},
		byName:     map[string]models.Component{},
		logger:     log,
	}
}

// Dir returns the absolute component directory.
func (r *Registry) Dir() string {
	return resolveDir(r.root, r.cfg.ComponentDir)
}

// Refresh rescans the component directory, writes the manifest and swaps the
// registered set. On error the previous set stays in place.
func (r *Registry) Refresh() error {
	found, err := Scan(r.root, r.cfg.ComponentDir, r.cfg.Prefix)
	if err != nil {
		metrics.ComponentScansTotal.WithLabelValues(metrics.ResultError).Inc()
		return err
	}

	if err = r.writeManifest(found); err != nil {
		metrics.ComponentScansTotal.WithLabelValues(metrics.ResultError).Inc()
		return err
	}

	byName := make(map[string]models.Component, len(found))
	for _, c := range found {
		byName[c.Name] = c
	}

	r.mu.Lock()
	r.components = found
	r.byName = byName
	r.mu.Unlock()

	metrics.ComponentScansTotal.WithLabelValues(metrics.ResultOK).Inc()
	metrics.ComponentsRegistered.Set(float64(len(found)))
	r.logger.Debug().Int("count", len(found)).Str("dir", r.cfg.ComponentDir).Msg("components registered")

	return nil
}

// Components returns a copy of the registered components sorted by name.
func (r *Registry) Components() []models.Component {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.components)
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (models.Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byName[name]
	return c, ok
}

// writeManifest atomically replaces the manifest with found.
func (r *Registry) writeManifest(found []models.Component) error {
	path := filepath.Join(r.root, ManifestPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	data, err := json.MarshalIndent(models.ComponentManifest{
		Prefix:     r.cfg.Prefix,
		Dir:        r.cfg.ComponentDir,
		Components: found,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending manifest file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			r.logger.Debug().Err(err).Msg("cleanup pending manifest file")
		}
	}()

	if _, err = pendingFile.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write manifest data: %w", err)
	}

	if err = pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace manifest file: %w", err)
	}

	return nil
}
