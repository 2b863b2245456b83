// Package diagnostics defines the error values produced by the lexing
// and parsing stages. Both carry enough source context to point at the
// offending line.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/sehnsucht13/zai-pl/internal/token"
)

// TokenError reports a character sequence the lexer could not turn
// into a token.
type TokenError struct {
	Line    int
	Column  int
	Source  []string
	Details string
}

func NewTokenError(line, column int, source, details string) *TokenError {
	return &TokenError{
		Line:    line,
		Column:  column,
		Source:  strings.Split(source, "\n"),
		Details: details,
	}
}

func (e *TokenError) Error() string {
	srcLine := ""
	if e.Line >= 0 && e.Line < len(e.Source) {
		srcLine = e.Source[e.Line]
	}
	marker := "_"
	if e.Column > 1 {
		marker = strings.Repeat(" ", e.Column-1) + "_"
	}
	return fmt.Sprintf("Token Error: Error on line %d, column %d\n  %s\n%s\n%s",
		e.Line, e.Column, srcLine, marker, e.Details)
}

// ParseError reports a token the parser did not expect, along with the
// set of token types that would have been legal.
type ParseError struct {
	Line     int
	Column   int
	Source   []string
	Expected []token.TokenType
	Got      token.TokenType
}

func NewParseError(got token.Token, source string, expected ...token.TokenType) *ParseError {
	return &ParseError{
		Line:     got.Line,
		Column:   got.Column,
		Source:   strings.Split(source, "\n"),
		Expected: expected,
		Got:      got.Type,
	}
}

func (e *ParseError) Error() string {
	srcLine := ""
	if e.Line >= 0 && e.Line < len(e.Source) {
		srcLine = e.Source[e.Line]
	}
	wanted := make([]string, 0, len(e.Expected))
	for _, t := range e.Expected {
		wanted = append(wanted, token.Describe(t))
	}
	return fmt.Sprintf("Parse Error: Line: %d, Column: %d\n\n  %s\n\nExplanation: Expected a '%s' token but received '%s'",
		e.Line, e.Column, srcLine, strings.Join(wanted, ""), token.Describe(e.Got))
}
