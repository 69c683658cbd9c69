package shaderpp

import (
	"log/slog"
	"strings"
)

// parseMath runs @pset/@padd/@psub/@pmul/@pdiv/@pmod over input. These
// mutate properties and never emit text; the pass exists solely so
// arithmetic is visible to @foreach bounds and @property expressions that
// follow it in the same buffer.
func parseMath(input string, properties *PropertyMap, logger *slog.Logger, diags *[]Diagnostic) (string, bool) {
	var out strings.Builder
	pos := 0

	for {
		kw, at, found := scanForOperation(input[pos:], mathOperations, true, &out)
		if !found {
			break
		}
		absAt := pos + at
		opener := newSubString(&input, absAt)
		sub := opener
		skipDirectiveParen(&sub, "@"+kw)

		args, ok := evaluateParamArgs(&sub)
		if !ok {
			reportError(diags, logger, "parseMath", lineOf(opener), "malformed argument list for @"+kw)
			return out.String(), false
		}
		dst, src, op2Arg, ok := splitMathArgs(args)
		if !ok {
			reportError(diags, logger, "parseMath", lineOf(opener), "@"+kw+" expects 2 or 3 arguments")
			return out.String(), false
		}

		op1 := properties.Get(src)
		op2 := parseOperand(properties, op2Arg)
		properties.Set(dst, opFor(mathOperations, kw)(op1, op2))

		pos = sub.Start()
	}

	return out.String(), true
}
