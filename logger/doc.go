// Package logger wraps zerolog with a small structured-logging API shared by
// the client packages and the CLI.
//
// The core client logs each request at debug level through an optional
// *Logger; the CLI configures one from CIRCLE_LOG_* environment variables.
// Secrets (the API key, user tokens) are never passed to log fields.
package logger
