// Package ws provides WebSocket streaming of Gaussian samples.
//
// A client sends a sample request (mean, variance, count, optional seed)
// and receives the draws in fixed-size chunks, followed by a completion
// message. Seeded requests produce reproducible streams.
package ws
