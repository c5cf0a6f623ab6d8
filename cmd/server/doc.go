// Command server runs the ProbKit Gaussian probability service: a REST
// and WebSocket surface over the Gaussian density, distribution, and
// sampling tools.
package main
