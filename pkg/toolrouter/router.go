package toolrouter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

// Option configures a Router.
type Option func(*options)

type options struct {
	validateArguments bool
}

// WithArgumentValidation compiles the input schema of every dynamically
// registered tool and validates raw arguments against it before the handler
// runs. Violations surface as ErrInvalidArguments; an object schema that
// fails to compile is rejected at registration with ErrInvalidSchema.
func WithArgumentValidation() Option {
	return func(o *options) {
		o.validateArguments = true
	}
}

// Router owns the name-to-route mapping and dispatches incoming calls.
//
// The router performs no internal locking. Callers are expected to finish
// registration and removal before serving; during the serving phase Dispatch
// is safe to call concurrently because the mapping is no longer mutated, each
// route's erased function carries no mutable state, and every call receives
// its own CallContext. Callers that must mutate the registry while serving
// supply their own synchronization.
type Router[S any] struct {
	routes map[string]Route[S]
	opts   options
}

// New creates an empty router.
func New[S any](opts ...Option) *Router[S] {
	r := &Router[S]{
		routes: make(map[string]Route[S]),
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Register inserts a route, overwriting any same-named entry unconditionally.
// The overwrite installs the incoming route's own provenance, so a static
// route replacing a dynamic one leaves the name static.
func (r *Router[S]) Register(route Route[S]) {
	r.routes[route.Name()] = route

	log.Debug().
		Str("tool", route.Name()).
		Bool("dynamic", route.dynamic).
		Msg("Tool route registered")
}

// WithRoute registers a route and returns the router for chaining.
func (r *Router[S]) WithRoute(route Route[S]) *Router[S] {
	r.Register(route)
	return r
}

// RegisterDynamic builds a descriptor from caller-supplied metadata, wraps
// the handler through the dynamic path and inserts the resulting route,
// marking the name as dynamic. The description may be empty. The schema must
// be a JSON object; no deeper schema semantics are checked unless argument
// validation is enabled.
func (r *Router[S]) RegisterDynamic(name, description string, inputSchema interface{}, handler DynamicHandler[S]) error {
	if name == "" {
		return ErrInvalidName
	}
	if _, exists := r.routes[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTool, name)
	}

	schemaObj, ok := inputSchema.(map[string]interface{})
	if !ok {
		return fmt.Errorf("%w: got %T", ErrInvalidSchema, inputSchema)
	}

	route := Route[S]{
		tool:    NewTool(name, description, schemaObj),
		call:    adaptDynamic(handler),
		dynamic: true,
	}

	if r.opts.validateArguments {
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schemaObj))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
		}
		route.schema = compiled
	}

	r.routes[name] = route

	log.Info().Str("tool", name).Msg("Dynamic tool registered")

	return nil
}

// Unregister removes a dynamically registered tool. Static routes are not
// removable through this path, including a static route that overwrote an
// earlier dynamic one.
func (r *Router[S]) Unregister(name string) error {
	route, ok := r.routes[name]
	if !ok || !route.dynamic {
		return fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}

	delete(r.routes, name)

	log.Info().Str("tool", name).Msg("Dynamic tool unregistered")

	return nil
}

// Remove deletes a route by name regardless of provenance. Removing an
// unknown name is a no-op.
func (r *Router[S]) Remove(name string) {
	delete(r.routes, name)
}

// Merge moves every route of other into r, overwriting same-named entries.
// Each incoming route keeps its provenance. Other is left empty.
func (r *Router[S]) Merge(other *Router[S]) {
	if other == nil {
		return
	}
	for name, route := range other.routes {
		r.routes[name] = route
	}
	clear(other.routes)
}

// Combine returns a new router holding a's routes with b's overlaid, same
// overwrite rule as Merge. Neither input is modified.
func Combine[S any](a, b *Router[S]) *Router[S] {
	out := New[S]()
	if a != nil {
		out.opts = a.opts
		for name, route := range a.routes {
			out.routes[name] = route
		}
	}
	if b != nil {
		for name, route := range b.routes {
			out.routes[name] = route
		}
	}
	return out
}

// Clone returns an independent router with the same routes. Descriptors are
// copied by value; erased invocation functions are shared.
func (r *Router[S]) Clone() *Router[S] {
	out := New[S]()
	out.opts = r.opts
	for name, route := range r.routes {
		out.routes[name] = route
	}
	return out
}

// Dispatch looks up the route for call.Name() and invokes it. Handler errors
// cross this boundary verbatim.
func (r *Router[S]) Dispatch(ctx context.Context, call *CallContext[S]) (Result, error) {
	route, ok := r.routes[call.Name()]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrToolNotFound, call.Name())
	}

	log.Debug().
		Str("call_id", call.ID()).
		Str("tool", call.Name()).
		Msg("Dispatching tool call")

	return route.Invoke(ctx, call)
}

// List returns a snapshot of all descriptors, order unspecified.
func (r *Router[S]) List() []Tool {
	tools := make([]Tool, 0, len(r.routes))
	for _, route := range r.routes {
		tools = append(tools, route.tool)
	}
	return tools
}

// Exists reports whether a route is registered under name.
func (r *Router[S]) Exists(name string) bool {
	_, ok := r.routes[name]
	return ok
}

// Names returns all registered tool names, order unspecified.
func (r *Router[S]) Names() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered routes.
func (r *Router[S]) Len() int {
	return len(r.routes)
}

// DynamicCount returns how many routes were registered dynamically.
func (r *Router[S]) DynamicCount() int {
	n := 0
	for _, route := range r.routes {
		if route.dynamic {
			n++
		}
	}
	return n
}

// StaticCount returns how many routes were registered statically.
func (r *Router[S]) StaticCount() int {
	return len(r.routes) - r.DynamicCount()
}
