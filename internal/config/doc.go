// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources; the first source that
// supplies a value for a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetCLIConfig] for the resolved view with defaults
// applied.
package config
