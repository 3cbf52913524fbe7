package channel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// MethodCallHandler answers method calls received on a MethodChannel.
// Returning types.ErrUnimplemented tells the caller the method does not exist.
type MethodCallHandler interface {
	HandleMethodCall(ctx context.Context, call types.MethodCall) (any, error)
}

// MethodCallHandlerFunc adapts a function to MethodCallHandler.
type MethodCallHandlerFunc func(ctx context.Context, call types.MethodCall) (any, error)

// HandleMethodCall calls f(ctx, call).
func (f MethodCallHandlerFunc) HandleMethodCall(ctx context.Context, call types.MethodCall) (any, error) {
	return f(ctx, call)
}

// MethodChannel is a named method call channel on a Messenger.
type MethodChannel struct {
	name      string
	messenger *Messenger
}

// NewMethodChannel returns the method channel called name on m.
func NewMethodChannel(m *Messenger, name string) *MethodChannel {
	return &MethodChannel{name: name, messenger: m}
}

// Name returns the channel name.
func (c *MethodChannel) Name() string { return c.name }

// SetMethodCallHandler installs h as the channel's handler, replacing any
// other. A nil h detaches the channel; once it returns no call reaches a
// previous handler.
func (c *MethodChannel) SetMethodCallHandler(h MethodCallHandler) {
	if h == nil {
		c.messenger.SetMessageHandler(c.name, nil)
		return
	}
	c.messenger.SetMessageHandler(c.name, c.wrap(h))
}

// AddMethodCallHandler installs h on top of the channel's current handler.
// Removing the returned Registration detaches h and leaves handlers
// installed by others in place.
func (c *MethodChannel) AddMethodCallHandler(h MethodCallHandler) *Registration {
	return c.messenger.AddMessageHandler(c.name, c.wrap(h))
}

func (c *MethodChannel) wrap(h MethodCallHandler) MessageHandler {
	return func(ctx context.Context, message []byte) ([]byte, error) {
		call, err := decodeCall(message)
		if err != nil {
			return nil, err
		}
		result, err := c.handle(ctx, h, call)
		return encodeReply(result, err)
	}
}

func (c *MethodChannel) handle(ctx context.Context, h MethodCallHandler, call types.MethodCall) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.messenger.logger.Error("method call handler panicked",
				zap.String("channel", c.name),
				zap.String("method", call.Method),
				zap.String("call_id", call.ID),
				zap.Any("panic", r))
			result, err = nil, &types.CallError{Code: codePanic, Message: fmt.Sprint(r)}
		}
	}()
	return h.HandleMethodCall(ctx, call)
}

// InvokeMethod calls method with args and returns the raw JSON result.
// A not-implemented reply is returned as an error wrapping
// types.ErrUnimplemented, and an error reply as a *types.CallError.
func (c *MethodChannel) InvokeMethod(ctx context.Context, method string, args any) (json.RawMessage, error) {
	call := types.MethodCall{ID: uuid.NewString(), Method: method}
	if args != nil {
		raw, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("encode arguments: %w", err)
		}
		call.Arguments = raw
	}

	msg, err := encodeCall(call)
	if err != nil {
		return nil, err
	}

	reply, err := c.messenger.Send(ctx, c.name, msg)
	if err != nil {
		return nil, err
	}

	result, err := decodeReply(reply)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", method, err)
	}
	return result, nil
}
