// Package toolrouter maps externally visible tool names to executable
// handlers and dispatches incoming calls with a per-call context.
//
// Invariants:
// - Tool names are unique; registry identity is the descriptor name.
// - Dynamically registered input schemas are JSON objects.
// - A route's provenance (static or dynamic) travels with the route through
//   merge, combine and clone; only dynamic routes are removable via Unregister.
//
// Usage:
//
//	router := toolrouter.New[*Service]()
//	router.Register(toolrouter.NewRoute(
//		toolrouter.NewTool("echo", "Echo input", schema),
//		func(ctx context.Context, svc *Service, args EchoArgs) (toolrouter.Result, error) {
//			return toolrouter.TextResult(args.Message), nil
//		},
//	))
//	call := toolrouter.NewCallContext("echo", svc, map[string]interface{}{"message": "hi"})
//	result, _ := router.Dispatch(ctx, call)
package toolrouter
