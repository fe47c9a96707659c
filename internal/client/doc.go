// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

// Package client implements the command-line client runtime.
//
// It wires the server adapter into a small set of subcommands (register,
// login, profile, entries, settings) so the filtered read paths can be
// exercised from a terminal or a script.
package client
