package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/shadbase/internal/config"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

var (
	keyStyle   = lipgloss.NewStyle().Bold(true)
	unsetStyle = lipgloss.NewStyle().Faint(true)
)

// row is one flattened configuration entry.
type row struct {
	key   string
	value string
}

func render(w io.Writer, cfg config.AppConfig, format string) error {
	switch format {
	case formatTable:
		_, err := io.WriteString(w, renderTable(rows(cfg))+"\n")
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func rows(cfg config.AppConfig) []row {
	return []row{
		{key: "compatibilityDate", value: cfg.CompatibilityDate},
		{key: "devtools.enabled", value: strconv.FormatBool(cfg.Devtools.Enabled)},
		{key: "css", value: strings.Join(cfg.CSS, ", ")},
		{key: "vite.plugins", value: strings.Join(cfg.Vite.Plugins, ", ")},
		{key: "modules", value: strings.Join(cfg.Modules, ", ")},
		{key: "supabase.url", value: cfg.Supabase.URL},
		{key: "supabase.key", value: cfg.Supabase.Key},
		{key: "supabase.redirect", value: strconv.FormatBool(cfg.Supabase.Redirect)},
		{key: "supabase.cookieOptions.maxAge", value: strconv.Itoa(cfg.Supabase.CookieOptions.MaxAge)},
		{key: "shadcn.prefix", value: cfg.Shadcn.Prefix},
		{key: "shadcn.componentDir", value: cfg.Shadcn.ComponentDir},
	}
}

func renderTable(rows []row) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.key))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = unsetStyle.Render("(empty)")
		}
		key := keyStyle.Width(width).Render(r.key)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, key, "  ", value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
