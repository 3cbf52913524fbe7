package types

import (
	"encoding/json"
	"fmt"
)

// MethodCall is a single request on a method channel.
type MethodCall struct {
	ID        string          `json:"id"`
	Method    string          `json:"method"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// CallError is an error reply from a method call handler.
type CallError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *CallError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("method call failed: %s", e.Code)
	}
	return fmt.Sprintf("method call failed: %s: %s", e.Code, e.Message)
}
