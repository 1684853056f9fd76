package calc

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Tokenizer struct {
	source   *bufio.Reader
	pos      int
	lastSize int
}

func NewTokenizer(source io.Reader) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(source),
	}
}

func (t *Tokenizer) readRune() (rune, int, error) {
	r, size, err := t.source.ReadRune()
	if err != nil {
		return 0, t.pos, err
	}
	pos := t.pos
	t.pos += size
	t.lastSize = size
	return r, pos, nil
}

// unreadRune must only follow a successful readRune.
func (t *Tokenizer) unreadRune() {
	if err := t.source.UnreadRune(); err != nil {
		panic(err)
	}
	t.pos -= t.lastSize
}

// Next returns the next token. After the input is exhausted it keeps returning TokenEOF.
func (t *Tokenizer) Next() (Token, error) {
	for {
		r, pos, err := t.readRune()
		if errors.Is(err, io.EOF) {
			return Token{Kind: TokenEOF, Pos: pos}, nil
		}
		if err != nil {
			return Token{}, err
		}

		if r == ' ' {
			continue
		}

		if r < utf8.RuneSelf {
			if kind, ok := symbolKinds[byte(r)]; ok {
				return Token{Kind: kind, Pos: pos}, nil
			}
		}

		if isDigit(r) {
			t.unreadRune()
			return t.parseInt()
		}

		e := &Error{
			Kind: UnexpectedCharacter,
			Char: r,
			Pos:  pos,
		}
		if r == utf8.RuneError && t.lastSize == 1 {
			// not valid UTF-8
			t.unreadRune()
			e.Byte, _ = t.source.ReadByte()
		}
		return Token{}, e
	}
}

func (t *Tokenizer) parseInt() (Token, error) {
	startPos := t.pos
	var buf strings.Builder
	for {
		r, _, err := t.readRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !isDigit(r) {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	value, err := strconv.ParseInt(buf.String(), 10, 64)
	if err != nil {
		return Token{}, &Error{
			Kind: NumberTooLarge,
			Pos:  startPos,
			Err:  err,
		}
	}
	return Token{
		Kind:  TokenInt,
		Value: value,
		Pos:   startPos,
	}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize collects every token of input up to and including TokenEOF.
func Tokenize(input string) ([]Token, error) {
	tokenizer := NewTokenizer(strings.NewReader(input))
	var tokens []Token
	for {
		token, err := tokenizer.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
		if token.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
