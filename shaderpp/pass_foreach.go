package shaderpp

import (
	"log/slog"
	"strconv"
	"strings"
)

// parseForEach expands @foreach(var, start, count) BODY @end. count is an
// exclusive upper bound despite its name: the loop runs over [start, count),
// not start..start+count.
func parseForEach(input string, properties *PropertyMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	var out strings.Builder
	pos := 0

	for {
		at, found := scanForToken(input[pos:], "foreach", &out)
		if !found {
			break
		}
		absAt := pos + at
		opener := newSubString(&input, absAt)
		sub := opener
		skipDirectiveParen(&sub, "@foreach")

		args, ok := evaluateParamArgs(&sub)
		if !ok || len(args) != 3 {
			reportError(diags, logger, "parseForEach", lineOf(opener), "@foreach expects exactly 3 arguments")
			return out.String(), false
		}
		varName := args[0]
		start := parseOperand(properties, args[1])
		count := parseOperand(properties, args[2])

		body := sub
		if !findBlockEnd(&body) {
			reportError(diags, logger, "parseForEach", lineOf(opener), "unclosed @foreach block")
			return out.String(), false
		}

		bodyText := body.Text()
		for i := start; i < count; i++ {
			out.WriteString(substituteLoopVar(bodyText, varName, i))
		}

		pos = body.End() + len("@end") + 1
		if pos > len(input) {
			pos = len(input)
		}
	}

	return out.String(), true
}

// substituteLoopVar replaces every literal occurrence of "@"+varName in
// body with i's decimal form. The match is a plain substring search, not a
// word-bounded one: "var immediately follows @" is the only boundary, so
// "@ivar" with varName "i" replaces just the "@i" prefix, leaving "var"
// stitched onto the digits.
func substituteLoopVar(body, varName string, i int32) string {
	target := "@" + varName
	val := strconv.FormatInt(int64(i), 10)

	var out strings.Builder
	pos := 0
	for {
		idx := strings.Index(body[pos:], target)
		if idx == none {
			out.WriteString(body[pos:])
			break
		}
		out.WriteString(body[pos : pos+idx])
		out.WriteString(val)
		pos += idx + len(target)
	}
	return out.String()
}
