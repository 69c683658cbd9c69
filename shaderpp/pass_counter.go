package shaderpp

import (
	"log/slog"
	"strconv"
	"strings"
)

// parseCounter runs last in the pipeline: @counter/@value emit decimal
// property values (counter also post-increments), and
// @set/@add/@sub/@mul/@div/@mod mutate silently like the p* variants in
// parseMath. Unlike parseMath, the scan never skips past an '@' whose
// word is not a counter keyword: the first such '@' ends the pass, and
// everything after it is copied through untouched.
func parseCounter(input string, properties *PropertyMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	var out strings.Builder
	pos := 0

	for {
		kw, at, found := scanForOperation(input[pos:], counterOperations, false, &out)
		if !found {
			break
		}
		absAt := pos + at
		opener := newSubString(&input, absAt)
		sub := opener
		skipDirectiveParen(&sub, "@"+kw)

		args, ok := evaluateParamArgs(&sub)
		if !ok {
			reportError(diags, logger, "parseCounter", lineOf(opener), "malformed argument list for @"+kw)
			return out.String(), false
		}

		switch kw {
		case "value":
			if len(args) != 1 {
				reportError(diags, logger, "parseCounter", lineOf(opener), "@value expects exactly 1 argument")
				return out.String(), false
			}
			out.WriteString(strconv.FormatInt(int64(properties.Get(args[0])), 10))

		case "counter":
			if len(args) != 1 {
				reportError(diags, logger, "parseCounter", lineOf(opener), "@counter expects exactly 1 argument")
				return out.String(), false
			}
			v := properties.Get(args[0])
			out.WriteString(strconv.FormatInt(int64(v), 10))
			properties.Set(args[0], v+1)

		default:
			dst, src, op2Arg, ok := splitMathArgs(args)
			if !ok {
				reportError(diags, logger, "parseCounter", lineOf(opener), "@"+kw+" expects 2 or 3 arguments")
				return out.String(), false
			}
			op1 := properties.Get(src)
			op2 := parseOperand(properties, op2Arg)
			properties.Set(dst, opFor(counterOperations, kw)(op1, op2))
		}

		pos = sub.Start()
	}

	return out.String(), true
}
