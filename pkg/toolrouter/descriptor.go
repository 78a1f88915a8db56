package toolrouter

// Annotations carries optional behavioral hints about a tool
type Annotations struct {
	Title           string `json:"title,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint,omitempty"`
	DestructiveHint bool   `json:"destructiveHint,omitempty"`
	IdempotentHint  bool   `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool   `json:"openWorldHint,omitempty"`
}

// Tool describes one externally invocable tool: its name, what it does, and
// the JSON Schema of its input object. Descriptors are immutable after
// construction; updating a tool means replacing its route.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	InputSchema map[string]interface{} `json:"inputSchema"`
	Annotations *Annotations           `json:"annotations,omitempty"`
}

// NewTool builds a tool descriptor around a caller-supplied input schema.
// The schema is trusted as-is; dynamic registration is the validated path.
func NewTool(name, description string, inputSchema map[string]interface{}) Tool {
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
	}
}

// WithAnnotations returns a copy of the descriptor with annotations attached.
func (t Tool) WithAnnotations(a Annotations) Tool {
	t.Annotations = &a
	return t
}
