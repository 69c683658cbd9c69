package shaderpp

import "strings"

// scanForToken copies bytes into out up to the next occurrence of
// "@"+keyword, a plain substring search with no word-boundary check.
// Returns the offset (relative to text) of the occurrence's '@'; when
// found is false, out has received every remaining byte of text.
func scanForToken(text, keyword string, out *strings.Builder) (at int, found bool) {
	idx := strings.Index(text, "@"+keyword)
	if idx == none {
		out.WriteString(text)
		return len(text), false
	}
	out.WriteString(text[:idx])
	return idx, true
}

// scanForOperation finds the next '@' whose following word exactly equals
// one of table's keywords. The word is bounded by the first space, tab, or
// '(' after the '@' — "@settings" never reads as "@set" plus leftovers;
// it is simply not an operation. Bytes before the match are copied into
// out.
//
// retryPastMismatch selects what an '@' with an unrecognized word does:
// the silent math family keeps scanning from the next '@', while the
// counter family gives up on the rest of the buffer immediately, copying
// it through untouched — so in the counter pass a stray '@' shadows every
// directive after it.
//
// When found is false (no match, or an early abort), out has received
// every remaining byte of text.
func scanForOperation(text string, table []operation, retryPastMismatch bool, out *strings.Builder) (keyword string, at int, found bool) {
	sub := newSubString(&text, 0)
	pos := sub.Find("@", 0)

	for pos != none {
		wordEnd := sub.FindFirstOf(" \t(", pos+1)
		if wordEnd == none {
			if !retryPastMismatch {
				break
			}
			wordEnd = sub.Size()
		}
		word := newSubStringRange(&text, pos+1, wordEnd)

		for _, op := range table {
			if word.MatchEqual(op.name) {
				out.WriteString(text[:pos])
				return op.name, pos, true
			}
		}

		if !retryPastMismatch {
			break
		}
		pos = sub.Find("@", pos+1)
	}

	out.WriteString(text)
	return "", len(text), false
}

// opFor looks up the binary function registered under name in table.
func opFor(table []operation, name string) opFunc {
	for _, op := range table {
		if op.name == name {
			return op.fn
		}
	}
	return nil
}

// splitMathArgs resolves a 2-or-3-argument math directive's (dst, src,
// op2Arg) triple, defaulting src to dst when only 2 arguments are given.
func splitMathArgs(args []string) (dst, src, op2Arg string, ok bool) {
	switch len(args) {
	case 2:
		return args[0], args[0], args[1], true
	case 3:
		return args[0], args[1], args[2], true
	default:
		return "", "", "", false
	}
}
