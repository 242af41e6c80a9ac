// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a MethodNotAllowed handler for router that answers
// 404 instead of 405 when the matched route does not serve the requested
// method, so unsupported methods do not reveal which paths exist.
//
// Patterns are compared with the raw request path. Routes with parameters or
// wildcards never match and always yield 404.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
