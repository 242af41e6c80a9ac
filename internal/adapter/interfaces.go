// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the backend-service client used by the framework
// bootstrap and the HTTP layer.
//
// The primary abstraction is [SupabaseClient], created by the factory
// [NewSupabaseClient]. The factory is where missing or malformed credentials
// from the resolved configuration are rejected; configuration resolution
// itself never fails.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/shadbase/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/supabase_client_mock.go -package=mock

// SupabaseClient defines access to the backend-service REST endpoints.
// Implementations attach the project key to every request and map
// transport-level errors to the sentinel values defined in this package.
type SupabaseClient interface {
	// URL returns the endpoint the client was created for.
	URL() string

	// KeyInfo describes the access key the client was created with.
	KeyInfo() KeyInfo

	// Health checks the auth service health endpoint. It returns nil when the
	// service reports healthy.
	Health(ctx context.Context) error

	// GetUser returns the user owning accessToken. Returns [ErrUnauthorized]
	// (wrapped) for expired or foreign tokens and [ErrEmptyAccessToken] when
	// accessToken is empty.
	GetUser(ctx context.Context, accessToken string) (models.SupabaseUser, error)
}
