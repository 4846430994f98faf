// Audex is a CLI that audits source code with LLM providers.
//
// It sends a file or snippet to a hosted model together with a fixed JSON
// response schema, defensively normalizes the reply, and renders quality,
// security, and performance scores with issues and recommendations.
//
// Usage:
//
//	audex analyze main.py               # audit a file
//	audex analyze src/*.go --fail-under 6
//	cat snippet.py | audex snippet      # audit code from stdin
//	audex models list                   # list known providers and models
//	audex config init                   # write a default config file
//
// See https://github.com/cwray/audex for full documentation.
package main
