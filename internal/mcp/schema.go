package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// inputSchema infers the advertised schema of a tool from T and opens it up:
// extra keys are allowed at every level and no key is required. Presence and
// enum checks belong to models.ValidateStruct, whose failures are reported as
// tool results rather than protocol errors.
func inputSchema[T any]() *jsonschema.Schema {
	s, err := jsonschema.For[T]()
	if err != nil {
		panic(fmt.Sprintf("infer input schema: %v", err))
	}
	openSchema(s)
	return s
}

func openSchema(s *jsonschema.Schema) {
	if s == nil {
		return
	}
	s.Required = nil
	if s.Properties != nil {
		s.AdditionalProperties = nil
	}
	for _, p := range s.Properties {
		openSchema(p)
	}
	openSchema(s.Items)
}

// decodeArguments copies the raw tool arguments into v, ignoring keys v does
// not declare.
func decodeArguments(args map[string]any, v any) error {
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
