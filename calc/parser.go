package calc

import (
	"io"
	"log/slog"
)

// Parser is a recursive-descent parser holding one token of lookahead.
//
//	expression ::= term (("+" | "-") term)*
//	term       ::= factor (("*" | "/") factor)*
//	factor     ::= INTEGER | "-" factor | "(" expression ")"
type Parser struct {
	tokenizer *Tokenizer
	current   Token
	logger    *slog.Logger
}

// NewParser reads the first token from source immediately and fails if that read fails.
// A nil logger discards all records.
func NewParser(source io.Reader, logger *slog.Logger) (*Parser, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Parser{
		tokenizer: NewTokenizer(source),
		logger:    logger,
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	p.logger.Debug("first token", "token", p.current)
	return p, nil
}

// Current returns the lookahead token.
func (p *Parser) Current() Token {
	return p.current
}

// Parse parses one expression and requires the input to end right after it.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != TokenEOF {
		return nil, &Error{
			Kind:  TrailingToken,
			Token: p.current,
			Pos:   p.current.Pos,
		}
	}
	return expr, nil
}

// ParseExpression parses an additive expression and leaves any following token unconsumed.
func (p *Parser) ParseExpression() (Expr, error) {
	p.logger.Debug("parse expression", "from", p.current)
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == TokenPlus || p.current.Kind == TokenMinus {
		op := p.current.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == TokenPlus {
			node = Add{Left: node, Right: rhs}
		} else {
			node = Sub{Left: node, Right: rhs}
		}
		p.logger.Debug("new expression", "expr", node)
	}
	return node, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	p.logger.Debug("parse term", "from", p.current)
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == TokenAsterisk || p.current.Kind == TokenSlash {
		op := p.current.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if op == TokenAsterisk {
			node = Mul{Left: node, Right: rhs}
		} else {
			node = Div{Left: node, Right: rhs}
		}
		p.logger.Debug("new term", "expr", node)
	}
	return node, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	p.logger.Debug("parse factor", "from", p.current)
	switch p.current.Kind {

	case TokenMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		factor := Neg{X: x}
		p.logger.Debug("new factor", "expr", factor)
		return factor, nil

	case TokenInt:
		factor := Int{Value: p.current.Value}
		if err := p.advance(); err != nil {
			return nil, err
		}
		p.logger.Debug("new factor", "expr", factor)
		return factor, nil

	case TokenLeftParenthesis:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if p.current.Kind != TokenRightParenthesis {
			return nil, &Error{
				Kind:  ExpectedClosingParenthesis,
				Token: p.current,
				Pos:   p.current.Pos,
			}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		p.logger.Debug("new factor", "expr", expr)
		return expr, nil

	}

	return nil, &Error{
		Kind:  UnexpectedToken,
		Token: p.current,
		Pos:   p.current.Pos,
	}
}

func (p *Parser) advance() error {
	token, err := p.tokenizer.Next()
	if err != nil {
		return err
	}
	p.logger.Debug("advance", "token", token)
	p.current = token
	return nil
}
