// Package config loads, merges, and validates configuration for the
// personahub server and command-line client.
//
// Values are assembled from multiple sources; later sources override earlier
// non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path taken from CONFIG or -config)
//
// [GetStructuredConfig] produces the full server configuration,
// [GetClientConfig] the subset the client binary needs. Server-only
// requirements (listen address, database DSN, token signing key) are checked
// by [StructuredConfig.ValidateServer] so the client can load the same
// config without satisfying them.
package config
