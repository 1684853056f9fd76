package calc

import "fmt"

type Token struct {
	Kind  TokenKind
	Value int64 // only for TokenInt
	Pos   int   // byte offset in the input
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenInt
	TokenPlus
	TokenMinus
	TokenAsterisk
	TokenSlash
	TokenLeftParenthesis
	TokenRightParenthesis
)

var tokenKindNames = [...]string{
	TokenEOF:              "Eof",
	TokenInt:              "Int",
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenAsterisk:         "Asterisk",
	TokenSlash:            "Slash",
	TokenLeftParenthesis:  "LeftParenthesis",
	TokenRightParenthesis: "RightParenthesis",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// String renders the debug form used in error messages, e.g. Int(42) or RightParenthesis.
func (t Token) String() string {
	if t.Kind == TokenInt {
		return fmt.Sprintf("Int(%d)", t.Value)
	}
	return t.Kind.String()
}

var symbolKinds = map[byte]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenAsterisk,
	'/': TokenSlash,
	'(': TokenLeftParenthesis,
	')': TokenRightParenthesis,
}
