// Package server wires the HTTP router, middleware stack, metrics, and
// the provider registry into a runnable probability service.
package server
