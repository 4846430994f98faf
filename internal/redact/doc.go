// Package redact strips likely secrets from code before it is sent to a
// remote model.
//
// Detection is regex-heuristic: API keys, AWS credentials, bearer tokens,
// JWTs, private key blocks, and provider-specific token formats are replaced
// with a [REDACTED] placeholder. Redaction is on by default and can be
// disabled with --no-redact.
package redact
