// Package docschema generates the JSON Schema of the form document so editors
// and CI can validate schema files without this module.
package docschema

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/stoewer/go-strcase"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// SchemaID identifies the generated document schema.
const SchemaID jsonschema.ID = "https://github.com/goliatone/go-formbuilder/schema/form.json"

type arm struct {
	value       any
	types       []model.FieldType
	description string
}

// arms lists every concrete field type with the type tags it serves. The
// group arm must stay last; leaf lists stop before it.
var arms = []arm{
	{model.TextField{}, []model.FieldType{model.FieldTypeText, model.FieldTypeTextarea, model.FieldTypeEmail, model.FieldTypePhone}, "Free text input."},
	{model.NumberField{}, []model.FieldType{model.FieldTypeNumber}, "Numeric input."},
	{model.DateField{}, []model.FieldType{model.FieldTypeDate, model.FieldTypeTime, model.FieldTypeDateTime}, "Date, time or date-time input."},
	{model.SelectField{}, []model.FieldType{model.FieldTypeSelect, model.FieldTypeRadio}, "Single choice from a list of options."},
	{model.MultiSelectField{}, []model.FieldType{model.FieldTypeMultiSelect}, "Multiple choices from a list of options."},
	{model.ToggleField{}, []model.FieldType{model.FieldTypeToggle}, "On/off switch mapped to two values."},
	{model.ImageSelectField{}, []model.FieldType{model.FieldTypeImageSelect, model.FieldTypeImageSelectMulti}, "Choice between options illustrated by images."},
	{model.FileUploadField{}, []model.FieldType{model.FieldTypeFileUpload}, "File upload."},
	{model.GroupField{}, []model.FieldType{model.FieldTypeGroup}, "Step or section holding leaf fields."},
}

var (
	fieldsType     = reflect.TypeOf(model.Fields{})
	leafFieldsType = reflect.TypeOf(model.LeafFields{})
)

// Generate returns the indented JSON Schema document.
func Generate() ([]byte, error) {
	return json.MarshalIndent(Reflect(), "", "  ")
}

// Reflect builds the schema: the form document inline at the root and one
// definition per field arm, with field lists expressed as oneOf references.
func Reflect() *jsonschema.Schema {
	root := newReflector(true).Reflect(&model.FormSchema{})
	root.ID = SchemaID
	root.Title = "Form schema"
	root.Description = "Ordered fields plus form-level metadata and translations."
	if root.Definitions == nil {
		root.Definitions = jsonschema.Definitions{}
	}

	reflector := newReflector(false)
	for _, a := range arms {
		reflected := reflector.Reflect(a.value)
		for name, def := range reflected.Definitions {
			if _, ok := root.Definitions[name]; !ok {
				root.Definitions[name] = def
			}
		}

		def, ok := root.Definitions[definitionName(a.value)]
		if !ok {
			continue
		}
		def.Description = a.description
		if def.Properties == nil {
			continue
		}
		if typ, ok := def.Properties.Get("type"); ok && typ != nil {
			typ.Enum = nil
			for _, t := range a.types {
				typ.Enum = append(typ.Enum, string(t))
			}
		}
	}
	return root
}

func newReflector(expanded bool) *jsonschema.Reflector {
	return &jsonschema.Reflector{
		ExpandedStruct: expanded,
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		Mapper: mapFieldLists,
	}
}

func mapFieldLists(t reflect.Type) *jsonschema.Schema {
	switch t {
	case fieldsType:
		return fieldList(arms)
	case leafFieldsType:
		return fieldList(arms[:len(arms)-1])
	default:
		return nil
	}
}

func fieldList(candidates []arm) *jsonschema.Schema {
	items := &jsonschema.Schema{}
	for _, a := range candidates {
		items.OneOf = append(items.OneOf, &jsonschema.Schema{Ref: "#/$defs/" + definitionName(a.value)})
	}
	return &jsonschema.Schema{Type: "array", Items: items}
}

func definitionName(v any) string {
	return strcase.SnakeCase(reflect.TypeOf(v).Name())
}
