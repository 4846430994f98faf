// Package source acquires the code to audit, from file paths or stdin.
//
// It enforces the configured size limit before any API call and derives the
// prompt language from the filename extension (unknown extensions fall back
// to "python").
package source
