// Package logging constructs the zerolog logger used across audex.
//
// The CLI logs to stderr in console format; --verbose lowers the level to
// debug. Report output on stdout is never mixed with log lines.
package logging
