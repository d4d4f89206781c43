// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env.local and .env files (loaded into the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// Defaults are applied after merging. The main entry points are
// [GetStructuredConfig] for the web server and [GetClientConfig] for the
// terminal client.
package config
