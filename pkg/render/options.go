package render

import (
	"fmt"
	"sort"
	"strings"
)

// RenderOptions carry per-request data that renderers need but the plan does
// not, such as where the form posts to.
type RenderOptions struct {
	// Action is the form target. Empty renders no action attribute.
	Action string
	// Method defaults to POST.
	Method string
	// Hidden inputs emitted alongside the fields (csrf tokens, step index).
	Hidden []HiddenField
}

// HiddenField is a hidden input name/value pair.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// SortedHidden drops unnamed fields, keeps the last value per name and sorts
// by name so output is deterministic.
func SortedHidden(fields []HiddenField) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	byName := make(map[string]string, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		byName[name] = field.Value
	}
	if len(byName) == 0 {
		return nil
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: name, Value: byName[name]})
	}
	return out
}

// MethodOrDefault returns the upper-cased method, POST when unset.
func (o RenderOptions) MethodOrDefault() string {
	method := strings.ToUpper(strings.TrimSpace(o.Method))
	if method == "" {
		return "POST"
	}
	return method
}
