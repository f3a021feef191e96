package hooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ToolInput represents the tool invocation the host is about to execute.
type ToolInput struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
	parsed    map[string]interface{}
}

// ParseToolInput reads and parses a single tool invocation JSON object from a reader.
// A missing tool_name is allowed; a tool_input that is not an object is treated as
// having no parameters, so a screenshot call with such a tool_input is blocked with
// the default format rather than failing to parse.
func ParseToolInput(reader io.Reader) (*ToolInput, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("failed to decode JSON: input must be an object")
	}

	var input ToolInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if len(input.ToolInput) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(input.ToolInput, &parsed); err == nil {
			input.parsed = parsed
		}
	}

	return &input, nil
}

// GetArg retrieves a raw argument from the tool input.
// Returns the value and true if found, nil and false if not found.
func (t *ToolInput) GetArg(name string) (interface{}, bool) {
	if t.parsed == nil {
		return nil, false
	}

	value, ok := t.parsed[name]
	return value, ok
}

// GetStringArg retrieves a string argument from the tool input.
// Returns the value and true if found, empty string and false if not found.
func (t *ToolInput) GetStringArg(name string) (string, bool) {
	value, ok := t.GetArg(name)
	if !ok {
		return "", false
	}

	strValue, ok := value.(string)
	if !ok {
		return "", false
	}

	return strValue, true
}
