package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(src string) []Token {
	lex := New(src)
	var out []Token
	for {
		tok := lex.Next()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"integer", "42", "42"},
		{"decimal", "3.14", "3.14"},
		{"scientific", "1.5e-10", "1.5e-10"},
		{"hex", "0x1f", "0x1f"},
		{"octal", "0o17", "0o17"},
		{"binary", "0b101", "0b101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(tt.input)
			assert.Equal(t, Literal, toks[0].Kind)
			assert.Equal(t, tt.want, toks[0].Text)
		})
	}
}

func TestScanRadixPrefixWithoutFollowingDigitIsNotConsumed(t *testing.T) {
	toks := collect("0xy")
	assert.Equal(t, Literal, toks[0].Kind)
	assert.Equal(t, "0", toks[0].Text)
	assert.Equal(t, Identifier, toks[1].Kind)
	assert.Equal(t, "xy", toks[1].Text)
}

func TestScanIdentifiers(t *testing.T) {
	toks := collect("sin cos_2 _private")
	assert.Equal(t, []string{"sin", "cos_2", "_private"}, []string{toks[0].Text, toks[1].Text, toks[2].Text})
	for _, tok := range toks[:3] {
		assert.Equal(t, Identifier, tok.Kind)
	}
}

func TestScanOperatorsBracketsAndSeparators(t *testing.T) {
	toks := collect("(1 + 2) * [3, 4]")
	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, OpenBracket)
	assert.Contains(t, kinds, CloseBracket)
	assert.Contains(t, kinds, Operator)
	assert.Contains(t, kinds, Separator)
}

func TestScanUnknownCharacter(t *testing.T) {
	toks := collect("=")
	assert.Equal(t, Unknown, toks[0].Kind)
	assert.Equal(t, "=", toks[0].Text)
}

func TestPeekDoesNotConsume(t *testing.T) {
	lex := New("foo")
	first := lex.Peek()
	second := lex.Next()
	assert.Equal(t, first, second)
	assert.Equal(t, EOF, lex.Next().Kind)
}

func TestEmptyInputYieldsEOF(t *testing.T) {
	toks := collect("   ")
	assert.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}
