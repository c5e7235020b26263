// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecovery: Turns handler panics into a 500 response and an error log.
//   - WithTimeout: Bounds the request context with a deadline.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - Health: Liveness/readiness handler backed by a probe function.
package controller
