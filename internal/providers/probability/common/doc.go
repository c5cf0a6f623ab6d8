// Package common provides shared helpers for the probability provider
// modules: result construction, parameter extraction with numeric type
// coercion, and IEEE 754 validation.
//
// Tool parameters arrive as map[string]interface{} decoded from JSON, so
// numbers may surface as float64, int, or int64 depending on the caller;
// the Get* helpers normalize all of them to float64.
package common
