// Package logging provides logging utilities for api-gateway.
//
// Structured logs go through zap and are configured once at startup:
//
//	logging.Setup(verbose, jsonOutput, os.Stderr)
//	logging.Info("request", "method", r.Method, "status", 200)
//
// Components that want a typed logger take logging.Logger directly.
//
// User-facing startup lines (Banner, UserInfo, UserError) are plain text on
// stdout/stderr and are not affected by the log level.
package logging
