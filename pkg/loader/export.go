package loader

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Export encodes schema verbatim as indented JSON.
func Export(schema model.FormSchema) ([]byte, error) {
	payload, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("loader: export: %w", err)
	}
	return payload, nil
}

// ExportYAML encodes schema as block-style YAML, keeping the key order of the
// JSON export.
func ExportYAML(schema model.FormSchema) ([]byte, error) {
	payload, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("loader: export: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(payload, &node); err != nil {
		return nil, fmt.Errorf("loader: export yaml: %w", err)
	}
	blockStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("loader: export yaml: %w", err)
	}
	return out, nil
}

// blockStyle clears the flow and quoting styles JSON input decodes with.
// yaml.v3 still quotes strings that would otherwise resolve to another type.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
