// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when it is given no services to
// serve. This is a wiring mistake and makes the application fail at startup.
var errNoServices = errors.New("no services to build handlers from")
