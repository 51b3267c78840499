// Package server exposes the calculator core over HTTP for a browser
// presentation layer.
//
// HTTP API
//
//	POST /evaluate  { "expression": "2+3*4" }
//	    Evaluate an expression; returns expression, result, words and the
//	    spoken phrase. 400 for empty input, 422 for evaluation errors.
//
//	GET /history
//	    Return the retained history records, newest first.
//
//	DELETE /history
//	    Drop all history.
//
//	GET /healthz
//	    Liveness probe.
//
// Responses are JSON. CORS is open so a local page can call the daemon
// directly.
package server
