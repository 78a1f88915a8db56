package toolrouter

import (
	"context"

	"github.com/xeipuuv/gojsonschema"
)

// Route binds one tool descriptor to one erased invocation function. Registry
// identity is the descriptor name. The dynamic flag records whether the route
// arrived through the validated runtime-registration path; it travels with
// the route through merge, combine and clone.
type Route[S any] struct {
	tool    Tool
	call    CallFunc[S]
	dynamic bool
	schema  *gojsonschema.Schema // compiled argument schema, dynamic routes only
}

// NewRoute builds a static route around a typed handler. Arguments are
// decoded into A at call time.
func NewRoute[S, A any](tool Tool, handler TypedHandler[S, A]) Route[S] {
	return Route[S]{tool: tool, call: adaptTyped(handler)}
}

// NewRawRoute builds a static route around an already-erased invocation
// function.
func NewRawRoute[S any](tool Tool, call CallFunc[S]) Route[S] {
	return Route[S]{tool: tool, call: call}
}

// Name returns the descriptor name.
func (r Route[S]) Name() string {
	return r.tool.Name
}

// Tool returns the descriptor.
func (r Route[S]) Tool() Tool {
	return r.tool
}

// Dynamic reports whether the route was registered at runtime.
func (r Route[S]) Dynamic() bool {
	return r.dynamic
}

// Invoke runs the route's erased function for one call.
func (r Route[S]) Invoke(ctx context.Context, call *CallContext[S]) (Result, error) {
	if r.schema != nil {
		if err := validateArguments(r.schema, call.Arguments()); err != nil {
			return Result{}, err
		}
	}
	return r.call(ctx, call)
}
