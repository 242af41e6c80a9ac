package models

// PublicRuntimeConfig is the browser-visible configuration served at
// /api/_config. It carries only values that are safe to expose.
type PublicRuntimeConfig struct {
	Supabase PublicSupabaseConfig `json:"supabase"`
}

// PublicSupabaseConfig is the public view of the backend-service record.
// Key is the anonymous (publishable) key; it identifies the project and is
// meant to ship to browsers.
type PublicSupabaseConfig struct {
	URL           string        `json:"url"`
	Key           string        `json:"key"`
	Redirect      bool          `json:"redirect"`
	CookieOptions CookieOptions `json:"cookieOptions"`
}

// CookieOptions mirrors the session cookie attributes exposed to clients.
type CookieOptions struct {
	MaxAge int `json:"maxAge"`
}
