// Package http provides the REST surface of the probability service:
// service listing, discovery, and tool execution, plus health and banner
// endpoints. Responses are marshaled with bytedance/sonic.
package http
