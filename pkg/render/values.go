package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Apply returns a copy of values with fieldID set to value. A nil value removes
// the answer so the field falls back to its default.
func Apply(values Values, fieldID string, value any) Values {
	out := make(Values, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	if value == nil {
		delete(out, fieldID)
		return out
	}
	out[fieldID] = value
	return out
}

// FieldValue returns the render-time value of f: the live answer when present,
// otherwise the schema-level default. The result is always a fresh value in
// the canonical shape of the field type.
func FieldValue(f model.LeafField, values Values) any {
	if raw, ok := values[model.ID(f)]; ok && raw != nil {
		return normalize(f, raw)
	}
	return defaultValue(f)
}

// IsEmpty reports whether v counts as no answer for f. A toggle only counts as
// answered when it holds its checked value.
func IsEmpty(f model.LeafField, v any) bool {
	if toggle, ok := f.(model.ToggleField); ok {
		s, _ := v.(string)
		return s != toggle.ToggleOptions.CheckedValue
	}
	switch typed := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case []string:
		return len(typed) == 0
	case []model.FileRef:
		return len(typed) == 0
	default:
		return false
	}
}

func defaultValue(f model.LeafField) any {
	switch typed := f.(type) {
	case model.SelectField:
		return typed.SelectOptions.DefaultValue
	case model.MultiSelectField:
		return append([]string{}, typed.MultiSelectOptions.DefaultValue...)
	case model.ToggleField:
		return typed.ToggleOptions.UncheckedValue
	case model.NumberField:
		if typed.NumberOptions != nil && typed.NumberOptions.DefaultValue != nil {
			return *typed.NumberOptions.DefaultValue
		}
		return nil
	case model.ImageSelectField:
		if typed.Multiple() {
			return []string{}
		}
		return ""
	case model.FileUploadField:
		return []model.FileRef{}
	default:
		return ""
	}
}

func normalize(f model.LeafField, raw any) any {
	switch typed := f.(type) {
	case model.MultiSelectField:
		return toStrings(raw)
	case model.ImageSelectField:
		if typed.Multiple() {
			return toStrings(raw)
		}
		return toString(raw)
	case model.ToggleField:
		if b, ok := raw.(bool); ok {
			if b {
				return typed.ToggleOptions.CheckedValue
			}
			return typed.ToggleOptions.UncheckedValue
		}
		return toString(raw)
	case model.NumberField:
		return toNumber(raw)
	case model.FileUploadField:
		return toFileRefs(raw)
	default:
		return toString(raw)
	}
}

func toString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func toStrings(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, toString(item))
		}
		return out
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	default:
		return []string{toString(v)}
	}
}

func toNumber(raw any) any {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return nil
}

func toFileRefs(raw any) []model.FileRef {
	switch v := raw.(type) {
	case []model.FileRef:
		return append([]model.FileRef{}, v...)
	case model.FileRef:
		return []model.FileRef{v}
	case []any:
		out := make([]model.FileRef, 0, len(v))
		for _, item := range v {
			if ref, ok := fileRefFromMap(item); ok {
				out = append(out, ref)
			}
		}
		return out
	default:
		return []model.FileRef{}
	}
}

func fileRefFromMap(item any) (model.FileRef, bool) {
	switch v := item.(type) {
	case model.FileRef:
		return v, true
	case map[string]any:
		ref := model.FileRef{
			ID:       stringAt(v, "id"),
			Name:     stringAt(v, "name"),
			URL:      stringAt(v, "url"),
			MimeType: stringAt(v, "mimeType"),
		}
		if n, ok := toNumber(v["size"]).(float64); ok {
			ref.Size = int64(n)
		}
		return ref, ref.URL != "" || ref.Name != ""
	default:
		return model.FileRef{}, false
	}
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
