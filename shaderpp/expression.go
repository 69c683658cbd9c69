package shaderpp

// ExprType classifies one node of an expression tree after the structural
// parse pass has finished building it.
type ExprType int

const (
	ExprVar ExprType = iota
	ExprAnd
	ExprOr
	ExprObject
)

// Expression is one node of a boolean expression tree built from the text
// inside @property(...). Siblings alternate operand (Var/Object) and
// operator (And/Or) nodes once the tree is well-formed; Result is filled in
// by evaluation and is meaningless before that.
type Expression struct {
	Value    string
	Negated  bool
	Type     ExprType
	Children []*Expression
	Result   bool
}

// evaluateExpression consumes the parenthesized boolean expression
// immediately following an already-skipped "@property(", advances sub past
// its closing ')', and folds it against properties. ok is false on any
// syntax error (unbalanced parens, malformed operator placement, a
// misplaced '!').
func evaluateExpression(sub *SubString, properties *PropertyMap) (result bool, ok bool) {
	expEnd := evaluateExpressionEnd(*sub)
	if expEnd == none {
		return false, false
	}

	exprText := sub.Text()[:expEnd]
	sub.SetStart(sub.start + expEnd + 1)

	siblings, ok := parseExpressionTree(exprText)
	if !ok {
		return false, false
	}
	return evaluateSiblings(siblings, properties)
}

// parseExpressionTree builds the tree of sibling Expression nodes described
// by text, which has no surrounding parentheses of its own (those were
// already consumed by the caller). Two tokenization rules matter:
//
//   - an operator character ('&' or '|') only starts a new sibling token
//     when the previous sibling's last byte differs from it; two identical
//     operator bytes in a row (forming "&&"/"||") accumulate onto the same
//     token instead.
//   - nothing resets "a token is in progress" except whitespace or a
//     parenthesis, so an operator immediately followed by an operand with
//     no separating whitespace (e.g. "a&&b") is not automatically split —
//     shader authors are expected to space operators out, matching real
//     .hlsl/.glsl templates.
func parseExpressionTree(text string) ([]*Expression, bool) {
	root := &Expression{}
	current := root
	var parents []*Expression
	textStarted := false
	pendingNegate := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '(':
			child := &Expression{Negated: pendingNegate}
			current.Children = append(current.Children, child)
			parents = append(parents, current)
			current = child
			textStarted = false
			pendingNegate = false

		case c == ')':
			if len(parents) == 0 {
				return nil, false
			}
			current = parents[len(parents)-1]
			parents = parents[:len(parents)-1]
			textStarted = false

		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			textStarted = false

		case c == '!':
			pendingNegate = true

		default:
			if !textStarted {
				textStarted = true
				current.Children = append(current.Children, &Expression{Negated: pendingNegate})
			}

			last := current.Children[len(current.Children)-1]
			if c == '&' || c == '|' {
				if len(current.Children) == 0 || pendingNegate {
					return nil, false
				}
				if last.Value != "" && last.Value[len(last.Value)-1] != c {
					current.Children = append(current.Children, &Expression{})
					last = current.Children[len(current.Children)-1]
				}
			}

			last.Value += string(c)
			pendingNegate = false
		}
	}

	if len(parents) != 0 {
		return nil, false
	}
	return root.Children, true
}

// evaluateSiblings classifies, validates, and folds one level of an
// expression tree, recursing into Object children. The fold is strictly
// left-to-right with a latched AND/OR mode, never precedence-based:
// "a || b && c" reads as ((a || b) && c). Existing shader templates
// depend on the left-to-right reading, so this must not be replaced with
// a precedence grammar.
func evaluateSiblings(siblings []*Expression, properties *PropertyMap) (bool, bool) {
	for _, e := range siblings {
		switch {
		case e.Value == "&&":
			e.Type = ExprAnd
		case e.Value == "||":
			e.Type = ExprOr
		case len(e.Children) > 0:
			e.Type = ExprObject
		default:
			e.Type = ExprVar
		}
	}

	lastWasOperator := true
	for _, e := range siblings {
		isOperator := e.Type == ExprAnd || e.Type == ExprOr
		isOperand := e.Type == ExprVar || e.Type == ExprObject

		if (isOperator && lastWasOperator) || (isOperand && !lastWasOperator) {
			return false, false
		}

		switch {
		case isOperator:
			lastWasOperator = true
		case e.Type == ExprVar:
			e.Result = properties.Get(e.Value) != 0
			lastWasOperator = false
		default: // ExprObject
			res, ok := evaluateSiblings(e.Children, properties)
			if !ok {
				return false, false
			}
			e.Result = res
			lastWasOperator = false
		}
	}

	// siblings must also end on an operand
	if len(siblings) > 0 && lastWasOperator {
		return false, false
	}

	result := true
	andMode := true
	for _, e := range siblings {
		switch e.Type {
		case ExprOr:
			andMode = false
		case ExprAnd:
			andMode = true
		default:
			v := e.Result
			if e.Negated {
				v = !v
			}
			if andMode {
				result = result && v
			} else {
				result = result || v
			}
		}
	}
	return result, true
}
