/*
Line Parser Module - Single-Pass Character Classifier
========================================================

Parse scans one input line left to right with no separate tokenizer
pass: each character either extends the word buffer under construction
or, once a non-word character arrives, first flushes that buffer into
the tree (via tree.Commit) and then acts on the character itself —
an operator, a paren, a comma, or whitespace. There is no lookahead
beyond the single trailing-minus check that lets "3e-5" stay one token.
*/

package lineparser

import (
	"fmt"

	"axion/number"
	"axion/tree"
)

// Error is a scanning failure raised before the tree ever sees the
// offending character.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func unrecognizedChar(c byte) error {
	return &Error{Kind: "UnrecognizedChar", Message: fmt.Sprintf("unrecognized character %q", c)}
}

var operators = map[byte]tree.Op{
	'*': tree.Mul,
	'/': tree.Div,
	'+': tree.Add,
	'^': tree.Expon,
}

// Parse scans line, builds an expression tree one character at a time,
// and evaluates it. line must not include a trailing newline; the end
// of the string acts as the terminator.
func Parse(line string) (number.Number, error) {
	t, cursor := tree.New()
	var buf []byte

	commit := func() {
		if len(buf) == 0 {
			return
		}
		cursor = t.Commit(cursor, string(buf))
		buf = buf[:0]
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		if isWordChar(buf, c) {
			buf = append(buf, c)
			continue
		}

		commit()

		op, isOperator := operators[c]

		switch {
		case c == ' ' || c == '\t':
			// Whitespace only ever separates tokens; nothing to do once
			// the pending buffer, if any, has been committed above.
		case c == '-':
			cursor = t.InsertMinus(cursor)
		case isOperator:
			cursor = t.InsertOperator(cursor, op)
		case c == '(':
			cursor = t.OpenParen(cursor)
		case c == ')':
			var err error
			cursor, err = t.CloseParen(cursor)
			if err != nil {
				return number.Number{}, err
			}
		case c == ',':
			var err error
			cursor, err = t.Comma(cursor)
			if err != nil {
				return number.Number{}, err
			}
		default:
			return number.Number{}, unrecognizedChar(c)
		}
	}

	commit()

	return t.Calculate(t.Root())
}

// isWordChar reports whether c extends the token buffer currently being
// built: letters, digits, '_', '.', and a '-' that continues a
// scientific-notation exponent ("3e-5") rather than introducing a unary
// minus or binary subtraction.
func isWordChar(buf []byte, c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.':
		return true
	case c == '-':
		return isScientificMinus(buf)
	default:
		return false
	}
}

func isScientificMinus(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	last := buf[len(buf)-1]
	if last != 'e' && last != 'E' {
		return false
	}
	return buf[0] >= '0' && buf[0] <= '9'
}
