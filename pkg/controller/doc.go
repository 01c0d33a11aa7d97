// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Middlewares:
//   - CORS: sets cross-origin headers and answers OPTIONS preflight requests.
//   - WithLogger: attaches a request ID and a request-scoped logger, then writes an access log.
//   - Recover: turns handler panics into a logged 500.
//   - WithTimeout: bounds request handling and answers 503 with a JSON body.
//
// Helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof handlers.
package controller
