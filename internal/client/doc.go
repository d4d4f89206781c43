// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It wires the sign-in and browsing screens, client services and the session
// keep-alive job into a single process lifecycle.
package client
