package tui

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/render"
)

func (f *Filler) serialize(sub render.Submission) ([]byte, error) {
	switch f.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(sub.Values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(sub.Values)), nil
	default:
		return json.Marshal(sub)
	}
}

// encodeForm repeats the key for list values, the way browsers post
// multi-valued fields.
func encodeForm(values map[string]any) string {
	out := url.Values{}
	for key, value := range values {
		for _, item := range formStrings(value) {
			out.Add(key, item)
		}
		if _, ok := out[key]; !ok {
			out.Set(key, "")
		}
	}
	return out.Encode()
}

func prettyPrint(values map[string]any) string {
	var b strings.Builder
	for _, key := range slices.Sorted(maps.Keys(values)) {
		fmt.Fprintf(&b, "%s=%s\n", key, strings.Join(formStrings(values[key]), ", "))
	}
	return b.String()
}

func formStrings(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}
	default:
		return []string{fmt.Sprint(v)}
	}
}
