package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sehnsucht13/zai-pl/internal/diagnostics"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

func TestTokenErrorFormat(t *testing.T) {
	err := diagnostics.NewTokenError(1, 4, "let a = 1;\nlet b & 2;", "A single '&' is not a valid symbol or operator.")
	msg := err.Error()
	assert.Contains(t, msg, "Token Error: Error on line 1, column 4")
	assert.Contains(t, msg, "let b & 2;")
	assert.Contains(t, msg, "A single '&'")
}

func TestParseErrorFormat(t *testing.T) {
	got := token.Token{Type: token.RCURLY, Line: 0, Column: 8}
	err := diagnostics.NewParseError(got, "print 1 }", token.SEMIC)
	msg := err.Error()
	assert.Contains(t, msg, "Parse Error: Line: 0, Column: 8")
	assert.Contains(t, msg, "print 1 }")
	assert.Contains(t, msg, "Expected a ';' token but received '}'")
}

func TestParseErrorListsExpectedSet(t *testing.T) {
	got := token.Token{Type: token.EOF}
	err := diagnostics.NewParseError(got, "", token.TRUE, token.FALSE)
	assert.Equal(t, []token.TokenType{token.TRUE, token.FALSE}, err.Expected)
	assert.Equal(t, token.TokenType(token.EOF), err.Got)
}
