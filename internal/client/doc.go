// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line counterpart of the browser
// form: it reads a leak submission from flags, checks that the bridge is
// healthy, submits the leak and prints the reported byte delta.
package client
