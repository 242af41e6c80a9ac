package config

// redactedValue replaces secrets in printed or logged configuration.
const redactedValue = "***"

// Redacted returns a copy of cfg with the backend-service access key masked.
// An empty key stays empty so that a missing credential remains visible.
func (cfg AppConfig) Redacted() AppConfig {
	out := cfg.Clone()
	if out.Supabase.Key != "" {
		out.Supabase.Key = redactedValue
	}

	return out
}
