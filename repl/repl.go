// Package repl implements the per-line evaluation behind the interactive
// calculator (the read loop itself lives in cmd, see spec.md §6):
// expression evaluation against a Quantity-backed context
// (a bare number is just a unitless quantity), plus two REPL-only surface
// conveniences that are deliberately kept outside the core ast/eval
// grammar: a trailing " to <unit-expr>" conversion suffix, and a leading
// "name = <expr>" variable-assignment shorthand.
package repl

import (
	"strings"

	"quanta/errs"
	"quanta/eval"
	"quanta/parser"
	"quanta/quantity"
	"quanta/token"
)

// Session holds the evaluation context across a sequence of REPL lines, so
// that assignments on one line are visible to later lines.
type Session struct {
	ctx      *eval.Context[quantity.Quantity]
	assigned []string
}

// NewSession builds a session pre-populated with the built-in Quantity
// context: constants, the SI unit/prefix catalog, and the physical
// constants.
func NewSession() *Session {
	return &Session{ctx: eval.NewQuantityContext()}
}

// Context exposes the underlying evaluation context, e.g. to look up a
// variable's current value once Variables has named it.
func (s *Session) Context() *eval.Context[quantity.Quantity] {
	return s.ctx
}

// Variables lists the names assigned via the "name = expr" shorthand, in
// assignment order, skipping the hundreds of catalog/constant names the
// context is pre-populated with.
func (s *Session) Variables() []string {
	return s.assigned
}

// Eval evaluates one line of input, applying the assignment and conversion
// surface conventions before falling back to plain expression evaluation.
// It returns the line's display string (already formatted) or an error.
func (s *Session) Eval(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errs.InvalidLiteralError("empty input")
	}

	if name, rhs, ok := splitAssignment(line); ok {
		value, err := s.evalExpr(rhs)
		if err != nil {
			return "", err
		}
		seen := false
		for _, n := range s.assigned {
			if n == name {
				seen = true
				break
			}
		}
		if !seen {
			s.assigned = append(s.assigned, name)
		}
		s.ctx.SetVariable(name, value)
		return name + " = " + value.String(), nil
	}

	if exprText, unitText, ok := splitConversion(line); ok {
		q, err := s.evalExpr(exprText)
		if err != nil {
			return "", err
		}
		converted, matched, err := eval.ConvertTo(q, unitText, s.ctx)
		if err != nil {
			return "", err
		}
		if !matched {
			return "", errs.UnitError("cannot convert %s to %s", q.Unit.String(), unitText)
		}
		return converted.String() + " " + strings.TrimSpace(unitText), nil
	}

	q, err := s.evalExpr(line)
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

func (s *Session) evalExpr(src string) (quantity.Quantity, error) {
	expr, err := parser.Parse(src)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return eval.Eval(expr, s.ctx)
}

// splitAssignment recognizes a leading "name = rhs" line: a single
// identifier, then a bare "=" token (never part of the core grammar), then
// the remainder as the right-hand-side source.
func splitAssignment(line string) (name, rhs string, ok bool) {
	lex := token.New(line)
	first := lex.Next()
	if first.Kind != token.Identifier {
		return "", "", false
	}
	eq := lex.Next()
	if eq.Kind != token.Unknown || eq.Text != "=" {
		return "", "", false
	}
	rhsStart := eq.Offset + 1
	if rhsStart >= len(line) {
		return "", "", false
	}
	return first.Text, line[rhsStart:], true
}

// splitConversion recognizes a bracket-depth-zero "to" keyword splitting
// the line into a value expression and a target unit expression.
func splitConversion(line string) (exprText, unitText string, ok bool) {
	lex := token.New(line)
	depth := 0
	sawExpr := false
	for {
		t := lex.Next()
		if t.Kind == token.EOF {
			return "", "", false
		}
		switch t.Kind {
		case token.OpenBracket:
			depth++
		case token.CloseBracket:
			depth--
		case token.Identifier:
			if depth == 0 && t.Text == "to" && sawExpr {
				unitStart := t.Offset + len(t.Text)
				return line[:t.Offset], line[unitStart:], true
			}
		}
		sawExpr = true
	}
}
