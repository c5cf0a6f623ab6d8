// Package service provides the provider registry for the probability
// service.
//
// The registry maintains a catalog of tool providers and handles service
// discovery, tool execution, and relevance scoring.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Intent-based discovery with scoring
//   - Tool execution with context passing and per-tool metrics
//
// Example Usage:
//
//	registry := service.NewRegistry().WithMetrics(metrics)
//	registry.Register(probabilityProvider)
//	result, err := registry.Execute(ctx, "gaussian.density", params, appCtx)
package service
