// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package nuxt

import "errors"

// Bootstrap errors. Callers match them with [errors.Is].
var (
	// ErrInvalidCompatibilityDate indicates a compatibility date that is not
	// a calendar date in "2006-01-02" form.
	ErrInvalidCompatibilityDate = errors.New("invalid compatibility date")

	// ErrUnknownModule indicates a module name with no registered implementation.
	ErrUnknownModule = errors.New("unknown module")

	// ErrUnknownPlugin indicates a plugin name with no registered implementation.
	ErrUnknownPlugin = errors.New("unknown plugin")

	// ErrStylesheetOutsideRoot indicates a stylesheet path resolving outside
	// the project root.
	ErrStylesheetOutsideRoot = errors.New("stylesheet outside project root")
)
