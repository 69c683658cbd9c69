// Package shaderpp implements a deterministic, in-memory template
// preprocessor for shader source text: a small directive language
// (@property, @foreach, @piece, @insertpiece, @counter, and an integer
// property arithmetic family) expanded over a caller-owned PropertyMap.
package shaderpp

import "log/slog"

// Parse expands in against properties and the accumulated contents of
// pieceFiles (already-read buffers, in order — reading them from disk is
// the host's job, not this package's), and returns the expanded shader
// source plus every diagnostic raised along the way. properties is
// mutated in place (counter increments, arithmetic) for the duration of
// the call and must not be shared with a concurrent Parse.
//
// Each piece file runs parseMath -> parseForEach -> parseProperties ->
// collectPieces, contributing pieces but no output text of its own. The
// main buffer then runs the full six passes: parseMath -> parseForEach ->
// parseProperties -> collectPieces -> insertPieces -> parseCounter. A
// pass that reports an error stops the pipeline immediately and returns
// the partially-built output. logger receives every diagnostic either
// way; pass nil to use the package default.
func Parse(in string, properties *PropertyMap, pieceFiles []string, logger *slog.Logger) (string, []Diagnostic) {
	var diags []Diagnostic
	pieces := newPiecesMap()

	for _, pieceFile := range pieceFiles {
		_, ok := runPieceFilePasses(pieceFile, properties, pieces, logger, &diags)
		if !ok {
			return "", diags
		}
	}

	out, ok := runMainBufferPasses(in, properties, pieces, logger, &diags)
	if !ok {
		return out, diags
	}
	return out, diags
}

func runPieceFilePasses(input string, properties *PropertyMap, pieces *PiecesMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	buf, ok := parseMath(input, properties, logger, diags)
	if !ok {
		return buf, false
	}
	buf, ok = parseForEach(buf, properties, logger, diags)
	if !ok {
		return buf, false
	}
	buf, ok = parseProperties(buf, properties, logger, diags)
	if !ok {
		return buf, false
	}
	return collectPieces(buf, pieces, logger, diags)
}

func runMainBufferPasses(input string, properties *PropertyMap, pieces *PiecesMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	buf, ok := parseMath(input, properties, logger, diags)
	if !ok {
		return buf, false
	}
	buf, ok = parseForEach(buf, properties, logger, diags)
	if !ok {
		return buf, false
	}
	buf, ok = parseProperties(buf, properties, logger, diags)
	if !ok {
		return buf, false
	}
	buf, ok = collectPieces(buf, pieces, logger, diags)
	if !ok {
		return buf, false
	}
	buf, ok = insertPieces(buf, pieces, logger, diags)
	if !ok {
		return buf, false
	}
	return parseCounter(buf, properties, logger, diags)
}
