// Package cache provides a file-based cache for raw model replies.
//
// Entries are keyed by a SHA-256 hash of the provider name, model, enabled
// aspect set, and redacted code. Each entry stores the raw reply string with
// a creation timestamp and TTL (in seconds); expired entries are skipped on
// read and removed. Replies are re-normalized on every read, so a cache hit
// and a live response take the same validation path.
//
// The default cache directory is $XDG_CACHE_HOME/audex (or the
// OS-appropriate equivalent). Cached payloads have already been through
// secret redaction.
package cache
