package toolrouter

import "errors"

var (
	// ErrInvalidName is returned when dynamic registration is attempted with an empty name
	ErrInvalidName = errors.New("tool name cannot be empty")

	// ErrDuplicateTool is returned when dynamic registration targets a name that already exists
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrInvalidSchema is returned when a dynamically supplied input schema is not a JSON object
	ErrInvalidSchema = errors.New("input schema must be a JSON object")

	// ErrToolNotFound is returned when dispatch or unregister targets an unknown tool
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidArguments is returned when call arguments cannot be decoded or fail schema validation
	ErrInvalidArguments = errors.New("invalid tool arguments")
)
