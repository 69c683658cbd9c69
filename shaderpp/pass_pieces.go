package shaderpp

import (
	"log/slog"
	"strings"

	"github.com/RobertP-SyndicateLabs/shaderprep/internal/suggest"
)

// insertFixpointSlack mirrors propertyFixpointSlack for insertPieces: the
// piece graph is expected to be acyclic, so this cap only fires on a
// cyclic @insertpiece graph.
const insertFixpointSlack = 64

// collectPieces registers every @piece(name) BODY @end in input into
// pieces and emits nothing. BODY is captured verbatim, already
// post-@property expansion since collectPieces always runs after
// parseProperties in the pipeline.
func collectPieces(input string, pieces *PiecesMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	var out strings.Builder
	pos := 0

	for {
		at, found := scanForToken(input[pos:], "piece", &out)
		if !found {
			break
		}
		absAt := pos + at
		opener := newSubString(&input, absAt)
		sub := opener
		skipDirectiveParen(&sub, "@piece")

		args, ok := evaluateParamArgs(&sub)
		if !ok || len(args) != 1 {
			reportError(diags, logger, "collectPieces", lineOf(opener), "@piece expects exactly 1 argument")
			return out.String(), false
		}
		name := args[0]

		body := sub
		if !findBlockEnd(&body) {
			reportError(diags, logger, "collectPieces", lineOf(opener), "unclosed @piece block")
			return out.String(), false
		}

		if pieces.has(name) {
			reportError(diags, logger, "collectPieces", lineOf(opener), "duplicate piece \""+name+"\"")
			return out.String(), false
		}
		pieces.define(name, body.Text())

		pos = body.End() + len("@end") + 1
		if pos > len(input) {
			pos = len(input)
		}
	}

	return out.String(), true
}

// insertPieces replaces @insertpiece(name) with the registered body, or
// with an empty string when name is unknown: silent, never an error. It
// re-runs to a fixpoint so a piece body containing its own @insertpiece
// keeps expanding.
func insertPieces(input string, pieces *PiecesMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	current := input
	budget := len(input) + insertFixpointSlack

	for strings.Contains(current, "@insertpiece") {
		budget--
		if budget < 0 {
			reportError(diags, logger, "insertPieces", 1, "exceeded fixpoint iteration cap (cyclic piece graph?)")
			return current, false
		}

		next, ok := insertPiecesOnce(current, pieces, logger, diags)
		if !ok {
			return next, false
		}
		current = next
	}

	return current, true
}

func insertPiecesOnce(input string, pieces *PiecesMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	var out strings.Builder
	pos := 0

	for {
		at, found := scanForToken(input[pos:], "insertpiece", &out)
		if !found {
			break
		}
		absAt := pos + at
		opener := newSubString(&input, absAt)
		sub := opener
		skipDirectiveParen(&sub, "@insertpiece")

		args, ok := evaluateParamArgs(&sub)
		if !ok || len(args) != 1 {
			reportError(diags, logger, "insertPieces", lineOf(opener), "@insertpiece expects exactly 1 argument")
			return out.String(), false
		}
		name := args[0]

		if body, found := pieces.lookup(name); found {
			out.WriteString(body)
		} else {
			if nearest, ok := suggest.Nearest(name, pieces.names()); ok {
				reportInfo(diags, logger, "insertPieces", lineOf(opener), "@insertpiece(\""+name+"\") has no registered piece; did you mean \""+nearest+"\"?")
			} else {
				reportInfo(diags, logger, "insertPieces", lineOf(opener), "@insertpiece(\""+name+"\") has no registered piece")
			}
		}

		pos = sub.Start()
	}

	return out.String(), true
}
