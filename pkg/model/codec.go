package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeField decodes a single field, dispatching on its "type" key.
func DecodeField(data []byte) (Field, error) {
	var head struct {
		Type FieldType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("model: decode field: %w", err)
	}

	switch head.Type {
	case FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone:
		return decodeArm[TextField](data)
	case FieldTypeNumber:
		return decodeArm[NumberField](data)
	case FieldTypeDate, FieldTypeTime, FieldTypeDateTime:
		return decodeArm[DateField](data)
	case FieldTypeSelect, FieldTypeRadio:
		return decodeArm[SelectField](data)
	case FieldTypeMultiSelect:
		return decodeArm[MultiSelectField](data)
	case FieldTypeToggle:
		return decodeArm[ToggleField](data)
	case FieldTypeImageSelect, FieldTypeImageSelectMulti:
		return decodeArm[ImageSelectField](data)
	case FieldTypeFileUpload:
		return decodeArm[FileUploadField](data)
	case FieldTypeGroup:
		return decodeArm[GroupField](data)
	case "":
		return nil, fmt.Errorf("%w: missing type", ErrUnknownFieldType)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, head.Type)
	}
}

func decodeArm[T Field](data []byte) (Field, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("model: decode field: %w", err)
	}
	return out, nil
}

// UnmarshalJSON decodes a heterogeneous field list.
func (fs *Fields) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("model: decode fields: %w", err)
	}
	out := make(Fields, 0, len(raw))
	for i, item := range raw {
		field, err := DecodeField(item)
		if err != nil {
			return fmt.Errorf("fields[%d]: %w", i, err)
		}
		out = append(out, field)
	}
	*fs = out
	return nil
}

// MarshalJSON encodes a nil list as [] so exports always carry the key.
func (fs Fields) MarshalJSON() ([]byte, error) {
	if fs == nil {
		return []byte("[]"), nil
	}
	return marshalList([]Field(fs))
}

// UnmarshalJSON decodes a group's children, rejecting nested groups.
func (fs *LeafFields) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*fs = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("model: decode group fields: %w", err)
	}
	out := make(LeafFields, 0, len(raw))
	for i, item := range raw {
		field, err := DecodeField(item)
		if err != nil {
			return fmt.Errorf("fields[%d]: %w", i, err)
		}
		leaf, ok := AsLeaf(field)
		if !ok {
			return fmt.Errorf("fields[%d] %q: %w", i, ID(field), ErrNestedGroup)
		}
		out = append(out, leaf)
	}
	*fs = out
	return nil
}

// MarshalJSON encodes a nil list as [].
func (fs LeafFields) MarshalJSON() ([]byte, error) {
	if fs == nil {
		return []byte("[]"), nil
	}
	return marshalList([]LeafField(fs))
}

func marshalList[T any](items []T) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		payload, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(payload)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
