// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// contact-form relay and the job-posting catalog. Cross-cutting concerns such
// as request tracing, access logging, metrics, security headers, CORS and
// rate limiting are handled in this package before requests are delegated to
// the service layer.
package http
