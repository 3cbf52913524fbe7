package channel

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// Reply statuses.
const (
	statusOK             = "ok"
	statusError          = "error"
	statusNotImplemented = "not_implemented"
)

// Error codes used for handler failures that are not a *types.CallError.
const (
	codeError = "error"
	codePanic = "panic"
)

// replyEnvelope is the wire form of a method call reply.
type replyEnvelope struct {
	Status string           `json:"status"`
	Result json.RawMessage  `json:"result,omitempty"`
	Error  *types.CallError `json:"error,omitempty"`
}

func encodeCall(call types.MethodCall) ([]byte, error) {
	return json.Marshal(call)
}

func decodeCall(data []byte) (types.MethodCall, error) {
	var call types.MethodCall
	if err := json.Unmarshal(data, &call); err != nil {
		return types.MethodCall{}, fmt.Errorf("%w: %v", types.ErrMalformed, err)
	}
	return call, nil
}

// encodeReply turns a handler's return values into a reply envelope.
// types.ErrUnimplemented becomes a not-implemented reply and a
// *types.CallError is sent as is; any other error is sent with code "error".
func encodeReply(result any, err error) ([]byte, error) {
	var env replyEnvelope
	var callErr *types.CallError

	switch {
	case err == nil:
		raw, merr := json.Marshal(result)
		if merr != nil {
			return nil, fmt.Errorf("encode result: %w", merr)
		}
		env = replyEnvelope{Status: statusOK, Result: raw}
	case errors.Is(err, types.ErrUnimplemented):
		env = replyEnvelope{Status: statusNotImplemented}
	case errors.As(err, &callErr):
		env = replyEnvelope{Status: statusError, Error: callErr}
	default:
		env = replyEnvelope{Status: statusError, Error: &types.CallError{Code: codeError, Message: err.Error()}}
	}
	return json.Marshal(env)
}

// decodeReply returns the raw result of a successful reply, or the error the
// reply carries.
func decodeReply(data []byte) (json.RawMessage, error) {
	var env replyEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformed, err)
	}

	switch env.Status {
	case statusOK:
		return env.Result, nil
	case statusNotImplemented:
		return nil, types.ErrUnimplemented
	case statusError:
		if env.Error == nil {
			return nil, &types.CallError{Code: codeError}
		}
		return nil, env.Error
	default:
		return nil, fmt.Errorf("%w: unknown status %q", types.ErrMalformed, env.Status)
	}
}
