// Package nuxt bootstraps the web application from a resolved
// [config.AppConfig].
//
// Bootstrap validates the compatibility date, resolves style-processing
// plugins, loads and transforms global stylesheets, and installs framework
// modules in the configured order. Built-in modules are "shadcn-nuxt"
// (component registration) and "@nuxtjs/supabase" (backend-service client and
// session cookie settings). The resulting [App] is read by the HTTP layer.
//
// Failures here belong to the framework, not to configuration resolution:
// empty backend-service credentials, for example, abort Bootstrap when the
// supabase module asks the client factory for a client.
package nuxt
