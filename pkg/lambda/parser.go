package lambda

// Grammar (application left-associative, binding tighter than
// abstraction; an abstraction body extends as far right as possible):
//
//	Term        := Abstraction | Application
//	Abstraction := LAMBDA IDENT DOT Term
//	Application := Atom Atom*
//	Atom        := IDENT | LPAREN Term RPAREN | Abstraction

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if t.Type != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(tt TokenType) (Token, error) {
	t := p.cur()
	if t.Type != tt {
		return Token{}, syntaxErrorf(t.Pos, "expected %v, got %v", tt, describe(t))
	}
	return p.advance(), nil
}

func describe(t Token) string {
	if t.Type == TokenEOF {
		return "end of expression"
	}
	return "'" + t.Text + "'"
}

// Parse parses an expression into a Term, consuming the whole input.
// Failures are *SyntaxError values carrying the offending position;
// no partial term is ever returned.
func Parse(input string) (Term, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if tok := p.cur(); tok.Type == TokenEOF {
		return nil, syntaxErrorf(tok.Pos, "empty expression")
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if tok := p.cur(); tok.Type != TokenEOF {
		return nil, syntaxErrorf(tok.Pos, "unexpected %v after expression", describe(tok))
	}
	return t, nil
}

// MustParse is Parse for fixed in-source expressions; it panics on
// error.
func MustParse(input string) Term {
	t, err := Parse(input)
	if err != nil {
		panic("lambda: MustParse(" + input + "): " + err.Error())
	}
	return t
}

func (p *parser) parseTerm() (Term, error) {
	if p.cur().Type == TokenLambda {
		return p.parseAbs()
	}
	return p.parseApp()
}

func (p *parser) parseAbs() (Term, error) {
	p.advance() // λ
	param, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDot); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Param: param.Text, Body: body}, nil
}

// parseApp folds one or more atoms left-associatively. An unbracketed
// abstraction atom consumes the rest of the input, so it is always
// the last atom of a chain.
func (p *parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for startsAtom(p.cur().Type) {
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fn: left, Arg: right}
	}
	return left, nil
}

func startsAtom(tt TokenType) bool {
	return tt == TokenIdent || tt == TokenLParen || tt == TokenLambda
}

func (p *parser) parseAtom() (Term, error) {
	switch tok := p.cur(); tok.Type {
	case TokenIdent:
		p.advance()
		return Var{Name: tok.Text}, nil
	case TokenLambda:
		return p.parseAbs()
	case TokenLParen:
		p.advance()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if closing := p.cur(); closing.Type != TokenRParen {
			return nil, syntaxErrorf(tok.Pos, "unmatched '('")
		}
		p.advance()
		return t, nil
	case TokenRParen:
		return nil, syntaxErrorf(tok.Pos, "unmatched ')'")
	default:
		return nil, syntaxErrorf(tok.Pos, "expected term, got %v", describe(tok))
	}
}
