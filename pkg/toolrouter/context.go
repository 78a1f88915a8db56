package toolrouter

import (
	"context"

	"github.com/google/uuid"
)

// CallContext carries everything the router needs to dispatch one call: the
// target tool name, a shared reference to the service state, and the raw
// argument object. It is constructed fresh per call and read-only afterwards;
// the router never persists it.
type CallContext[S any] struct {
	id        string
	name      string
	service   S
	arguments map[string]interface{}
}

// NewCallContext builds a per-call context. Arguments may be nil when the
// caller supplied none.
func NewCallContext[S any](name string, service S, arguments map[string]interface{}) *CallContext[S] {
	return &CallContext[S]{
		id:        uuid.NewString(),
		name:      name,
		service:   service,
		arguments: arguments,
	}
}

// ID returns the generated call correlation ID.
func (c *CallContext[S]) ID() string {
	return c.id
}

// Name returns the target tool name.
func (c *CallContext[S]) Name() string {
	return c.name
}

// Service returns the shared service reference.
func (c *CallContext[S]) Service() S {
	return c.service
}

// Arguments returns the raw argument object, nil when absent.
func (c *CallContext[S]) Arguments() map[string]interface{} {
	return c.arguments
}

type callContextKey struct{}

// ContextWithCall attaches the call context to a context.Context for handler
// code that needs call metadata downstream.
func ContextWithCall[S any](ctx context.Context, call *CallContext[S]) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if call == nil {
		return ctx
	}
	return context.WithValue(ctx, callContextKey{}, call)
}

// CallFromContext extracts a call context previously attached with
// ContextWithCall.
func CallFromContext[S any](ctx context.Context) *CallContext[S] {
	if ctx == nil {
		return nil
	}
	if v := ctx.Value(callContextKey{}); v != nil {
		if call, ok := v.(*CallContext[S]); ok {
			return call
		}
	}
	return nil
}
