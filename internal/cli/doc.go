// Package cli wires the cobra command tree for the audex binary.
//
// Commands: analyze (audit files), snippet (audit stdin), config, models,
// cache, version. Exit codes are deterministic: 0 success, 1 a score fell
// below --fail-under, 2 usage error, 3 authentication error, 4 runtime
// error.
package cli
