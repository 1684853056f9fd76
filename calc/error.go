package calc

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type ErrorKind uint8

const (
	UnexpectedCharacter ErrorKind = iota + 1
	NumberTooLarge
	UnexpectedToken
	ExpectedClosingParenthesis
	TrailingToken
	Overflow
	DivisionByZero
)

var errorKindNames = [...]string{
	UnexpectedCharacter:        "unexpected character",
	NumberTooLarge:             "number too large",
	UnexpectedToken:            "unexpected token",
	ExpectedClosingParenthesis: "expected closing parenthesis",
	TrailingToken:              "trailing token",
	Overflow:                   "overflow",
	DivisionByZero:             "division by zero",
}

// ErrorKind is itself an error so that errors.Is(err, calc.Overflow) works.
func (k ErrorKind) Error() string {
	if int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

type Error struct {
	Kind  ErrorKind
	Op    Operation // Overflow
	Token Token     // UnexpectedToken, ExpectedClosingParenthesis, TrailingToken
	Char  rune      // UnexpectedCharacter
	Byte  byte      // UnexpectedCharacter, the raw byte when the input is not valid UTF-8
	Pos   int       // byte offset, for tokenizer and parser errors
	Err   error     // NumberTooLarge
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		if e.Char == utf8.RuneError && e.Byte >= utf8.RuneSelf {
			quoted := strconv.Quote(string([]byte{e.Byte}))
			return "Unexpected character: '" + quoted[1:len(quoted)-1] + "'"
		}
		return fmt.Sprintf("Unexpected character: '%c'", e.Char)
	case NumberTooLarge:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "number too large"
	case UnexpectedToken:
		return "Unexpected token in factor: " + e.Token.String()
	case ExpectedClosingParenthesis:
		return "Expected closing parenthesis, got: " + e.Token.String()
	case TrailingToken:
		return "Unexpected trailing token: " + e.Token.String()
	case Overflow:
		return "Overflow on " + e.Op.String()
	case DivisionByZero:
		return "Division by zero"
	}
	return e.Kind.Error()
}

func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
