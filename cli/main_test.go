package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildOnce(t *testing.T) {
	dir := t.TempDir()
	opts := buildOptions{
		shaderFile:     writeFile(t, dir, "main.glsl", "X@insertpiece(greet)Y@property(f)Z@end"),
		propertiesFile: writeFile(t, dir, "props.json", `{"f": 1}`),
		pieceFiles:     []string{writeFile(t, dir, "pieces.glsl", "@piece(greet)hi@end")},
		outFile:        filepath.Join(dir, "out.glsl"),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	require.NoError(t, buildOnce(opts))

	out, err := os.ReadFile(opts.outFile)
	require.NoError(t, err)
	assert.Equal(t, "XhiYZ", string(out))
}

func TestBuildOnceReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	opts := buildOptions{
		shaderFile: writeFile(t, dir, "main.glsl", "@foreach(i, 0, 2)never closed"),
		outFile:    filepath.Join(dir, "out.glsl"),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	err := buildOnce(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclosed")
}

func TestBuildOnceRejectsInvalidProperties(t *testing.T) {
	dir := t.TempDir()
	opts := buildOptions{
		shaderFile:     writeFile(t, dir, "main.glsl", "plain"),
		propertiesFile: writeFile(t, dir, "props.json", `{"f": "one"}`),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	assert.Error(t, buildOnce(opts))
}

func TestBuildOnceMissingShaderFile(t *testing.T) {
	opts := buildOptions{
		shaderFile: filepath.Join(t.TempDir(), "nope.glsl"),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	assert.Error(t, buildOnce(opts))
}
