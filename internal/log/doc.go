// Package log provides slog loggers that sanitize sensitive information.
//
// The SecureHandler masks attribute values before they reach the
// underlying handler:
//   - HTTP headers (Authorization, Cookie, Set-Cookie, X-Api-Key)
//   - secrets recognised by key name or value pattern (tokens, keys)
//   - candidate details: names, email addresses and phone numbers
//
// Masking applies in verbose mode as well.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Info("upload received", "email", "jane@example.com") // email=***REDACTED***
//	slog.SetDefault(logger)
package log
