package toolrouter

import (
	"context"
	"encoding/json"
	"fmt"
)

// CallFunc is the erased invocation signature every handler shape is adapted
// to. Implementations must not share mutable state between concurrent calls.
type CallFunc[S any] func(ctx context.Context, call *CallContext[S]) (Result, error)

// DynamicHandler executes a tool registered at runtime. The handler receives
// the service reference and the raw argument object unchanged and is solely
// responsible for interpreting them. Implementations must be safe for
// concurrent use; the router holds them behind shared ownership.
type DynamicHandler[S any] interface {
	Call(ctx context.Context, service S, arguments map[string]interface{}) (Result, error)
}

// DynamicHandlerFunc adapts a plain function to DynamicHandler.
type DynamicHandlerFunc[S any] func(ctx context.Context, service S, arguments map[string]interface{}) (Result, error)

// Call implements DynamicHandler.
func (f DynamicHandlerFunc[S]) Call(ctx context.Context, service S, arguments map[string]interface{}) (Result, error) {
	return f(ctx, service, arguments)
}

// TypedHandler executes a tool whose arguments decode into A.
type TypedHandler[S, A any] func(ctx context.Context, service S, args A) (Result, error)

// adaptTyped erases a typed handler. The raw argument object is decoded into
// A before the handler runs; a decode failure never reaches the handler.
func adaptTyped[S, A any](handler TypedHandler[S, A]) CallFunc[S] {
	return func(ctx context.Context, call *CallContext[S]) (Result, error) {
		var args A
		if raw := call.Arguments(); raw != nil {
			data, err := json.Marshal(raw)
			if err != nil {
				return Result{}, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
			}
			if err := json.Unmarshal(data, &args); err != nil {
				return Result{}, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
			}
		}
		return handler(ctx, call.Service(), args)
	}
}

// adaptDynamic erases a dynamic handler. Service and raw arguments are
// forwarded unchanged, no decode step.
func adaptDynamic[S any](handler DynamicHandler[S]) CallFunc[S] {
	return func(ctx context.Context, call *CallContext[S]) (Result, error) {
		return handler.Call(ctx, call.Service(), call.Arguments())
	}
}
