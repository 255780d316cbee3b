package lambda

import (
	"fmt"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenIdent
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of expression"
	case TokenLambda:
		return "'λ'"
	case TokenDot:
		return "'.'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenIdent:
		return "identifier"
	}
	panic("unreachable")
}

// Token is a lexical token. Pos is the rune offset of its first
// character in the input.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}

// SyntaxError is a tokenizer or parser failure at a known position
// (rune offset into the expression).
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// isIdentRune reports whether r may appear in an identifier.
// Identifiers are maximal runs of letters; λ is a Unicode letter but
// always lexes as the binder marker.
func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) && r != 'λ'
}

// Tokenize scans an expression into tokens, ending with a TokenEOF.
// Both '\' and 'λ' lex as TokenLambda. Whitespace separates tokens
// and is otherwise discarded; any other rune is a *SyntaxError.
func Tokenize(input string) ([]Token, error) {
	runes := []rune(input)
	var toks []Token
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '\\' || r == 'λ':
			toks = append(toks, Token{TokenLambda, string(r), i})
			i++
		case r == '.':
			toks = append(toks, Token{TokenDot, ".", i})
			i++
		case r == '(':
			toks = append(toks, Token{TokenLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, Token{TokenRParen, ")", i})
			i++
		case isIdentRune(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			toks = append(toks, Token{TokenIdent, string(runes[start:i]), start})
		default:
			return nil, syntaxErrorf(i, "unrecognized character %q", r)
		}
	}
	toks = append(toks, Token{TokenEOF, "", len(runes)})
	return toks, nil
}
