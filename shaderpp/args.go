package shaderpp

import "strings"

// skipDirectiveParen advances sub's start past a directive keyword (with
// its leading '@') and the '(' that must immediately follow it. Every
// directive in this language is written "@name(args...)" with no space
// between the name and '(': the skip is an unconditional len(directive)+1
// bytes, so a space before '(' shifts the window and surfaces downstream
// as a malformed argument list.
func skipDirectiveParen(sub *SubString, directive string) {
	start := sub.start + len(directive) + 1
	if start > sub.end {
		start = sub.end
	}
	sub.SetStart(start)
}

// evaluateExpressionEnd returns the offset (relative to sub's start) of the
// ')' that closes the parenthesized text sub is positioned just inside of,
// honoring nested parentheses. sub must start right after the opening '('
// already consumed by the caller (see skipDirectiveParen). Returns none if
// the buffer ends before the parentheses balance.
func evaluateExpressionEnd(sub SubString) int {
	text := sub.Text()
	nesting := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			nesting++
		case ')':
			nesting--
			if nesting < 0 {
				return i
			}
		}
	}
	return none
}

// evaluateParamArgs consumes a parenthesized, comma-separated argument list
// whose opening '(' sub's caller has already skipped past. It advances sub
// past the matching ')' and returns the whitespace-trimmed argument
// strings. ok is false on any forbidden character ('(', ')', '@', '&', '|')
// or a stray token appearing after whitespace within an argument.
func evaluateParamArgs(sub *SubString) ([]string, bool) {
	expEnd := evaluateExpressionEnd(*sub)
	if expEnd == none {
		return nil, false
	}

	argsText := sub.Text()[:expEnd]
	sub.SetStart(sub.start + expEnd + 1)

	const (
		stateEmpty = iota
		stateInToken
		stateAfterToken
	)

	args := []strings.Builder{{}}
	state := stateEmpty

	for i := 0; i < len(argsText); i++ {
		c := argsText[i]
		switch {
		case c == '(' || c == ')' || c == '@' || c == '&' || c == '|':
			return nil, false
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if state == stateInToken {
				state = stateAfterToken
			}
		case c == ',':
			state = stateEmpty
			args = append(args, strings.Builder{})
		default:
			if state == stateAfterToken {
				return nil, false
			}
			args[len(args)-1].WriteByte(c)
			state = stateInToken
		}
	}

	out := make([]string, len(args))
	for i := range args {
		out[i] = args[i].String()
	}
	return out, true
}
