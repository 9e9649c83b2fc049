package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/loader"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

func (a *app) loadSchema(path string) (model.FormSchema, loader.Report, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return loader.LoadFS(os.DirFS(dir), name, loader.WithLogger(a.logger))
}

// loadValues reads prefilled answers from a JSON or YAML object.
func loadValues(path string) (render.Values, error) {
	if path == "" {
		return render.Values{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read values: %w", err)
	}
	values := render.Values{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("cli: decode values %s: %w", path, err)
	}
	return values, nil
}

func writeOutput(path string, data []byte, fallback func([]byte) error) error {
	if path == "" {
		return fallback(data)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cli: write %s: %w", path, err)
	}
	return nil
}
