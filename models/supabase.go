// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthEvent names a client-side auth state change relayed to the server.
type AuthEvent string

// Auth events understood by the session relay.
const (
	AuthEventInitialSession       AuthEvent = "INITIAL_SESSION"
	AuthEventSignedIn             AuthEvent = "SIGNED_IN"
	AuthEventSignedOut            AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed       AuthEvent = "TOKEN_REFRESHED"
	AuthEventUserUpdated          AuthEvent = "USER_UPDATED"
	AuthEventPasswordRecovery     AuthEvent = "PASSWORD_RECOVERY"
	AuthEventMFAChallengeVerified AuthEvent = "MFA_CHALLENGE_VERIFIED"
)

// Session holds the tokens of an authenticated backend-service session.
type Session struct {
	// AccessToken is the short-lived JWT sent as a bearer token.
	AccessToken string `json:"access_token"`

	// RefreshToken is exchanged for a new access token when it expires.
	RefreshToken string `json:"refresh_token"`

	// TokenType is "bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int `json:"expires_in,omitempty"`

	// ExpiresAt is the access token expiry as a Unix timestamp.
	ExpiresAt int64 `json:"expires_at,omitempty"`

	User *SupabaseUser `json:"user,omitempty"`
}

// SessionRequest is the body of POST /api/_supabase/session.
type SessionRequest struct {
	Event   AuthEvent `json:"event"`
	Session *Session  `json:"session,omitempty"`
}

// SupabaseUser is the subset of the auth user record returned by
// GET /auth/v1/user that the application relies on.
type SupabaseUser struct {
	ID           string         `json:"id"`
	Aud          string         `json:"aud"`
	Role         string         `json:"role"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	LastSignInAt *time.Time     `json:"last_sign_in_at,omitempty"`
}
