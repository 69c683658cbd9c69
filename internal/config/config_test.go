package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	props, err := ParseProperties([]byte(`{"diffuse_map": 1, "num_lights": 4, "debug": 0}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]int32{
		"diffuse_map": 1,
		"num_lights":  4,
		"debug":       0,
	}, props)
}

func TestParsePropertiesNegativeValues(t *testing.T) {
	props, err := ParseProperties([]byte(`{"bias": -8}`))
	require.NoError(t, err)
	assert.Equal(t, int32(-8), props["bias"])
}

func TestParsePropertiesEmptyObject(t *testing.T) {
	props, err := ParseProperties([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestParsePropertiesRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"not an object", `[1, 2]`},
		{"string value", `{"a": "one"}`},
		{"float value", `{"a": 1.5}`},
		{"boolean value", `{"a": true}`},
		{"out of int32 range", `{"a": 2147483648}`},
		{"empty property name", `{"": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProperties([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "props.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"f": 1}`), 0o644))

	props, err := LoadProperties(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int32{"f": 1}, props)
}

func TestLoadPropertiesMissingFile(t *testing.T) {
	_, err := LoadProperties(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
