package shaderpp

import (
	"log/slog"
	"strings"
)

// propertyFixpointSlack bounds how many extra passes parseProperties will
// run beyond input's length before treating non-termination as a hard
// error. Each pass strictly shrinks the @property count, so this only
// ever triggers on a pathological input.
const propertyFixpointSlack = 64

// parseProperties expands @property(expr) BODY @end, keeping BODY only
// when expr folds true, and re-runs to a fixpoint because a kept BODY may
// itself contain further @property blocks.
func parseProperties(input string, properties *PropertyMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	current := input
	budget := len(input) + propertyFixpointSlack

	for strings.Contains(current, "@property") {
		budget--
		if budget < 0 {
			reportError(diags, logger, "parseProperties", 1, "exceeded fixpoint iteration cap")
			return current, false
		}

		next, ok := parsePropertiesOnce(current, properties, logger, diags)
		if !ok {
			return next, false
		}
		current = next
	}

	return current, true
}

func parsePropertiesOnce(input string, properties *PropertyMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	var out strings.Builder
	pos := 0

	for {
		at, found := scanForToken(input[pos:], "property", &out)
		if !found {
			break
		}
		absAt := pos + at
		opener := newSubString(&input, absAt)
		sub := opener
		skipDirectiveParen(&sub, "@property")

		include, ok := evaluateExpression(&sub, properties)
		if !ok {
			reportError(diags, logger, "parseProperties", lineOf(opener), "malformed @property expression")
			return out.String(), false
		}

		body := sub
		if !findBlockEnd(&body) {
			reportError(diags, logger, "parseProperties", lineOf(opener), "unclosed @property block")
			return out.String(), false
		}

		if include {
			out.WriteString(body.Text())
		}

		// @property resumes exactly len("@end") bytes after the block
		// body, unlike @foreach/@piece which resume one byte further.
		pos = body.End() + len("@end")
	}

	return out.String(), true
}
