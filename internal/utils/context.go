// Package utils provides general-purpose helper utilities used across the
// HTTP layer and the backend-service adapter: type-safe context keys, JSON
// response writing and HTTP client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AccessTokenCtxKey is the key under which the session middleware stores the
// backend-service access token taken from the session cookie.
var AccessTokenCtxKey = contextKey("accessToken")

// WithAccessToken returns a copy of ctx carrying token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AccessTokenCtxKey, token)
}

// GetAccessTokenFromContext retrieves the access token stored by
// [WithAccessToken]. ok is false when the value is missing, empty or of an
// unexpected type.
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	return token, ok && token != ""
}
