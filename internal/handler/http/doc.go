// Package http implements the HTTP surface of a bootstrapped application.
//
// It serves the build version, the public runtime configuration and the
// processed global stylesheets, relays client-side auth state into session
// cookies, and exposes the development tooling routes when devtools are
// enabled. Request tracing, access logging, metrics, compression and the
// optional login redirect are handled by middleware in this package.
package http
