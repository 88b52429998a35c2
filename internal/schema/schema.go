// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema declares the structured output shape for every
// generation stage and renders the per-schema format instructions that
// are injected verbatim into prompts. Pure data and pure functions; no
// side effects.
package schema

import (
	"fmt"
	"strings"
)

// FieldType is the JSON type a field must carry.
type FieldType string

const (
	String     FieldType = "string"
	Integer    FieldType = "integer"
	StringList FieldType = "array of strings"
	ObjectList FieldType = "array of objects"
)

// Field is one named field in a schema, with a human-readable
// description the model uses as a generation target.
type Field struct {
	Name        string
	Type        FieldType
	Description string
}

// Schema is the declared output shape for one generation stage.
type Schema struct {
	Name   string
	Fields []Field
}

// FieldNames returns the declared field names in order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// FormatInstructions renders a deterministic textual encoding of the
// schema (field name, type, description) for prompt injection. The same
// schema always renders to the same text.
func (s Schema) FormatInstructions() string {
	var b strings.Builder
	b.WriteString("Respond with a JSON object containing exactly these fields:\n{\n")
	for i, f := range s.Fields {
		comma := ","
		if i == len(s.Fields)-1 {
			comma = ""
		}
		fmt.Fprintf(&b, "  %q: <%s>%s  // %s\n", f.Name, f.Type, comma, f.Description)
	}
	b.WriteString("}\n")
	b.WriteString("Every key and every string value must be wrapped in double quotes.\n")
	b.WriteString("Return ONLY the JSON object, with no additional text or explanation.")
	return b.String()
}
