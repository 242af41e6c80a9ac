// Package metrics provides Prometheus metrics for the bootstrap and the HTTP
// layer. Labels stay low-cardinality: route patterns, never raw paths.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConfigResolutionsTotal counts configuration resolutions by result. An
	// error result means a layer could not be merged and was left out.
	ConfigResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shadbase_config_resolutions_total",
		Help: "Total number of configuration resolutions, by result (ok/error).",
	}, []string{"result"})

	// ComponentScansTotal counts component directory scans by result.
	ComponentScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shadbase_component_scans_total",
		Help: "Total number of component directory scans, by result (ok/error).",
	}, []string{"result"})

	// ComponentsRegistered reports the number of components from the last
	// successful scan.
	ComponentsRegistered = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shadbase_components_registered",
		Help: "Number of UI components registered by the last successful scan.",
	})

	// ModulesInstalledTotal counts module installations by module name and result.
	ModulesInstalledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shadbase_modules_installed_total",
		Help: "Total number of framework module installations, by module and result.",
	}, []string{"module", "result"})

	// HTTPRequestsTotal counts served requests by route pattern, method and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shadbase_http_requests_total",
		Help: "Total number of HTTP requests, by route pattern, method and status class.",
	}, []string{"route", "method", "code"})
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// StatusClass maps an HTTP status code to its class label ("2xx", "4xx", ...).
func StatusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
