// Package config loads a host-supplied property environment from a JSON
// file, validating it against an embedded JSON Schema before any value
// reaches the preprocessor.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed properties.schema.json
var propertiesSchemaJSON []byte

const schemaURL = "properties.schema.json"

var propertiesSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(propertiesSchemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(schemaURL)
}

// LoadProperties reads path and returns its name -> value pairs. A value of
// the wrong type or outside int32 range is a validation error, never a
// silent truncation.
func LoadProperties(path string) (map[string]int32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading properties file: %w", err)
	}
	props, err := ParseProperties(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

// ParseProperties decodes and validates a JSON property environment.
func ParseProperties(data []byte) (map[string]int32, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding properties JSON: %w", err)
	}
	if err := propertiesSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validating properties JSON: %w", err)
	}

	obj := doc.(map[string]interface{})
	out := make(map[string]int32, len(obj))
	for name, v := range obj {
		out[name] = int32(v.(float64))
	}
	return out, nil
}
