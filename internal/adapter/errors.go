// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Factory errors returned by [NewSupabaseClient]. They mark the point where
// missing or malformed backend-service credentials surface.
var (
	// ErrEmptySupabaseURL indicates that the endpoint URL resolved empty.
	ErrEmptySupabaseURL = errors.New("supabase url is empty")
	// ErrEmptySupabaseKey indicates that the access key resolved empty.
	ErrEmptySupabaseKey = errors.New("supabase key is empty")
	// ErrInvalidSupabaseURL indicates an endpoint without scheme or host.
	ErrInvalidSupabaseURL = errors.New("supabase url is invalid")
)

// Transport errors mapped from backend-service HTTP status codes by
// mapHTTPError. Callers match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// ErrEmptyAccessToken is returned by GetUser when called without a token.
var ErrEmptyAccessToken = errors.New("empty access token")
