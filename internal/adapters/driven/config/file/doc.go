// Package file provides the file-based ConfigStore adapter.
// Configuration persists as TOML under the docforge config directory.
//
// Recognised keys:
//   - credentials_file: path to a Google service-account JSON file
//   - rate_limit.requests_per_second, rate_limit.burst: Docs API pacing
//   - verbose: default verbosity for the CLI
package file
