// Package errors provides the typed error taxonomy for api-gateway.
//
// Every failure that reaches a caller is a GatewayError carrying a Kind,
// the HTTP status to answer with, and a human-readable message:
//
//	MissingParameter   - 400, url query parameter absent or empty
//	ProxyRequestFailed - upstream status when known, else 500
//	Internal           - 500, recovered panics and other surprises
//	NotFound           - 404, unrouted path
//	MethodNotAllowed   - 405, routed path with the wrong method
//
// Config and Server kinds are startup failures and only affect the process
// exit code (see GetExitCode).
//
// Envelope renders any error as the {error, message} JSON body.
package errors
