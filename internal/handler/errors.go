// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoApplication is returned by NewHandlers when no bootstrapped
// application is supplied. There is nothing to serve without one.
var errNoApplication = errors.New("no application to serve")
