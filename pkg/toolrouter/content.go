package toolrouter

// Content is one item in a tool result. Type discriminates the payload:
// "text" carries Text, "json" carries Data.
type Content struct {
	Type string      `json:"type"`
	Text string      `json:"text,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// TextContent builds a text content item.
func TextContent(text string) Content {
	return Content{Type: "text", Text: text}
}

// JSONContent builds a structured content item.
func JSONContent(data interface{}) Content {
	return Content{Type: "json", Data: data}
}

// Result is the successful outcome of a tool call: an ordered sequence of
// content items the router never inspects.
type Result struct {
	Content []Content `json:"content"`
}

// TextResult wraps a single text item as a result.
func TextResult(text string) Result {
	return Result{Content: []Content{TextContent(text)}}
}
