// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for the fortnote CLI and
// [GetServerConfig] for the HTTP API server. Both take the [Flags] bound to
// the command's flag set with [BindFlags].
package config
