// Package config resolves the application configuration consumed by the
// framework bootstrap and the backend-service client factory.
//
// An [AppConfig] is assembled once at startup from two layers (later layers
// override earlier non-zero fields):
//  1. Static literals (compatibility date, modules, stylesheets, plugins,
//     component generation settings, cookie options).
//  2. Environment variables SUPABASE_URL and SUPABASE_KEY, optionally backed
//     by dotenv files that never take precedence over the process environment.
//
// Resolution never fails. Missing credentials resolve to empty strings and
// are rejected later by the backend-service client factory.
//
// The main entry points are [ResolveAppConfig] and [Resolver.Resolve] for the
// application configuration, and [Resolver.ResolveServer] for the listen
// settings of the HTTP server.
package config
