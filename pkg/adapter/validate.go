package adapter

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports arguments that fail a tool's schema before any
// adapter is invoked.
type ValidationError struct {
	Tool    string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: missing required %s",
		e.Tool, strings.Join(e.Missing, ", "))
}

// ValidateArgs checks args against the tool's JSON schema. Required
// properties must be present; unknown properties pass through untouched and
// no type coercion is attempted.
func ValidateArgs(toolName string, schema map[string]any, args map[string]any) error {
	if schema == nil {
		return nil
	}

	var missing []string
	for _, name := range requiredFields(schema) {
		if _, ok := args[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &ValidationError{Tool: toolName, Missing: missing}
	}
	return nil
}

// requiredFields extracts the "required" list, tolerating both the
// JSON-decoded []any form and a native []string.
func requiredFields(schema map[string]any) []string {
	switch req := schema["required"].(type) {
	case []string:
		return req
	case []any:
		fields := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				fields = append(fields, s)
			}
		}
		return fields
	default:
		return nil
	}
}
