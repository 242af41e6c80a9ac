// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by the session relay and the devtools routes. Callers can match against
// them with [errors.Is].
var (
	// ErrSupabaseNotInstalled is returned by the session routes when the
	// application was bootstrapped without the supabase module.
	ErrSupabaseNotInstalled = errors.New("supabase module is not installed")

	// ErrShadcnNotInstalled is returned by the devtools component route when
	// the application was bootstrapped without the shadcn module.
	ErrShadcnNotInstalled = errors.New("shadcn module is not installed")

	// ErrUnknownAuthEvent is returned when the relayed auth event is not one
	// the client library emits.
	ErrUnknownAuthEvent = errors.New("unknown auth event")

	// ErrMissingSession is returned when an event that implies a signed-in
	// user carries no session or an empty access token.
	ErrMissingSession = errors.New("auth event without session")

	// ErrNoSessionCookie is returned when a request needs a session but no
	// access token cookie is present.
	ErrNoSessionCookie = errors.New("no session cookie")
)
