// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one subcommand with the given arguments and blocks until
	// it completes.
	Run(ctx context.Context, args []string) error
}
