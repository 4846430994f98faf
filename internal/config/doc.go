// Package config loads and merges audex configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (AUDEX_PROVIDER, AUDEX_MODEL, AUDEX_FORMAT, etc.)
//  3. Config file ($XDG_CONFIG_HOME/audex/config.json)
//  4. Built-in defaults
//
// The merged [Config] is an explicit value threaded through every call; no
// package in this module reads configuration from process globals. Score
// weights default to quality 0.4, security 0.35, performance 0.25.
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key in the config file.
package config
