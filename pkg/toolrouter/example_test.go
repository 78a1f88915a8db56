package toolrouter_test

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harun/toolgate/pkg/toolrouter"
)

type appService struct {
	greeting string
}

// Example demonstrates dynamic registration and dispatch
func Example() {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	router := toolrouter.New[*appService]()

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{"type": "string"},
		},
	}

	handler := toolrouter.DynamicHandlerFunc[*appService](
		func(ctx context.Context, svc *appService, args map[string]interface{}) (toolrouter.Result, error) {
			name, _ := args["name"].(string)
			return toolrouter.TextResult(fmt.Sprintf("%s, %s!", svc.greeting, name)), nil
		})

	if err := router.RegisterDynamic("greet", "Greet someone", schema, handler); err != nil {
		panic(err)
	}

	service := &appService{greeting: "Hello"}
	call := toolrouter.NewCallContext("greet", service, map[string]interface{}{"name": "world"})

	result, err := router.Dispatch(context.Background(), call)
	if err != nil {
		panic(err)
	}

	fmt.Println(result.Content[0].Text)
	// Output: Hello, world!
}

// ExampleNewRoute demonstrates a statically declared, typed tool
func ExampleNewRoute() {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	type addArgs struct {
		A int `json:"a"`
		B int `json:"b"`
	}

	tool, err := toolrouter.NewToolForType[addArgs]("add", "Add two numbers")
	if err != nil {
		panic(err)
	}

	router := toolrouter.New[struct{}]().
		WithRoute(toolrouter.NewRoute(tool,
			func(ctx context.Context, _ struct{}, args addArgs) (toolrouter.Result, error) {
				return toolrouter.TextResult(fmt.Sprintf("%d", args.A+args.B)), nil
			}))

	call := toolrouter.NewCallContext("add", struct{}{}, map[string]interface{}{"a": 2.0, "b": 3.0})
	result, err := router.Dispatch(context.Background(), call)
	if err != nil {
		panic(err)
	}

	fmt.Println(result.Content[0].Text)
	// Output: 5
}
