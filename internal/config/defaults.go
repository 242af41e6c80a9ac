package config

// Static configuration literals. They are not overridable by environment,
// flags or files.
const (
	DefaultCompatibilityDate = "2025-07-15"
	DefaultStylesheet        = "~/assets/css/tailwind.css"
	DefaultComponentDir      = "./components/ui"

	PluginTailwindCSS = "tailwindcss"
	ModuleShadcn      = "shadcn-nuxt"
	ModuleSupabase    = "@nuxtjs/supabase"
)

// staticConfig returns a freshly allocated AppConfig holding the static
// literals. Every call allocates new slices.
func staticConfig() *AppConfig {
	return &AppConfig{
		CompatibilityDate: DefaultCompatibilityDate,
		Devtools:          Devtools{Enabled: true},
		CSS:               []string{DefaultStylesheet},
		Vite: Vite{
			Plugins: []string{PluginTailwindCSS},
		},
		Modules: []string{ModuleShadcn, ModuleSupabase},
		Supabase: Supabase{
			Redirect:      false,
			CookieOptions: CookieOptions{MaxAge: 0},
		},
		Shadcn: Shadcn{
			Prefix:       "",
			ComponentDir: DefaultComponentDir,
		},
	}
}
