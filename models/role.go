package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Role is a LangGPT persona definition: the structured document the generator
// produces and the renderer turns into text.
type Role struct {
	Name         string   `json:"name" yaml:"name" validate:"required"`
	Description  string   `json:"description" yaml:"description" validate:"required"`
	Instructions string   `json:"instructions" yaml:"instructions" validate:"required"`
	Background   string   `json:"background,omitempty" yaml:"background,omitempty"`
	Skills       []string `json:"skills,omitempty" yaml:"skills,omitempty"`
	Constraints  []string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Workflow     []string `json:"workflow,omitempty" yaml:"workflow,omitempty"`
	Examples     []string `json:"examples,omitempty" yaml:"examples,omitempty"`
	Tools        []string `json:"tools,omitempty" yaml:"tools,omitempty"`
	InputFormat  *Format  `json:"input_format,omitempty" yaml:"input_format,omitempty"`
	OutputFormat *Format  `json:"output_format,omitempty" yaml:"output_format,omitempty"`
}

// Clone returns a copy of r that shares no slices or formats with it.
func (r Role) Clone() Role {
	out := r
	out.Skills = slices.Clone(r.Skills)
	out.Constraints = slices.Clone(r.Constraints)
	out.Workflow = slices.Clone(r.Workflow)
	out.Examples = slices.Clone(r.Examples)
	out.Tools = slices.Clone(r.Tools)
	if r.InputFormat != nil {
		f := r.InputFormat.Clone()
		out.InputFormat = &f
	}
	if r.OutputFormat != nil {
		f := r.OutputFormat.Clone()
		out.OutputFormat = &f
	}
	return out
}

// FormatField is one named property of an input or output format.
type FormatField struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Format describes a structured input or output shape. Properties keep their
// declared order, which the JSON encoding preserves.
type Format struct {
	Type       string        `json:"type" yaml:"type"`
	Properties []FormatField `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Clone returns a copy of f with its own property slice.
func (f Format) Clone() Format {
	return Format{Type: f.Type, Properties: slices.Clone(f.Properties)}
}

// MarshalJSON encodes the format as {"type": ..., "properties": {name: {type, description}}}
// with properties in declaration order.
func (f Format) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	if err := writeJSONString(&buf, f.Type); err != nil {
		return nil, err
	}
	if len(f.Properties) > 0 {
		buf.WriteString(`,"properties":{`)
		for i, p := range f.Properties {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, p.Name); err != nil {
				return nil, err
			}
			buf.WriteString(`:{"type":`)
			if err := writeJSONString(&buf, p.Type); err != nil {
				return nil, err
			}
			if p.Description != "" {
				buf.WriteString(`,"description":`)
				if err := writeJSONString(&buf, p.Description); err != nil {
					return nil, err
				}
			}
			buf.WriteByte('}')
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON is the inverse of MarshalJSON. Property order follows the
// order of keys in the input document.
func (f *Format) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       string          `json:"type"`
		Properties json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.Type = raw.Type
	f.Properties = nil
	if len(raw.Properties) == 0 || string(raw.Properties) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw.Properties))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("format properties: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)
		var field struct {
			Type        string `json:"type"`
			Description string `json:"description"`
		}
		if err := dec.Decode(&field); err != nil {
			return fmt.Errorf("format property %q: %w", name, err)
		}
		f.Properties = append(f.Properties, FormatField{Name: name, Type: field.Type, Description: field.Description})
	}
	_, err = dec.Token()
	return err
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
