// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the session controller and background
// synchronization into a single process lifecycle.
package client
