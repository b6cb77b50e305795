// Package gateway provides the HTTP surface of api-gateway.
//
// Routes:
//
//	GET /            fixed service description
//	GET /health      liveness with a UTC timestamp
//	GET /api/proxy   ?url=<target>, relayed through a forwarder.Forwarder
//
// Every failure, including unknown paths, wrong methods and recovered
// panics, is answered with the JSON envelope {"error": ..., "message": ...}.
//
// Requests pass through request-id, access-log and panic-recovery
// middleware in that order.
package gateway
