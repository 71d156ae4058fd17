// Package lexer implements venus-db's hand-written SQL tokenizer: one
// token, one of keyword, identifier, literal, or operator/punctuation,
// plus an end-of-stream sentinel.
package lexer

import (
	"strings"
	"unicode"

	"github.com/karthikeyaspace/venus-db/sql/token"
	"github.com/karthikeyaspace/venus-db/verr"
)

var singleChar = map[rune]token.Kind{
	',': token.Comma,
	'.': token.Dot,
	';': token.Semicolon,
	'(': token.LParen,
	')': token.RParen,
	'=': token.Eq,
	'<': token.Lt,
	'>': token.Gt,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
}

// Lex tokenizes the entire input, always terminating with an EOF token.
// Returns a syntax error on an unterminated string literal or an
// unexpected character.
func Lex(input string) ([]token.Token, error) {
	runes := []rune(input)
	i := 0
	n := len(runes)
	var out []token.Token

	for i < n {
		c := runes[i]

		switch {
		case unicode.IsSpace(c):
			i++

		case c == '\'':
			start := i
			i++
			var sb strings.Builder
			closed := false
			for i < n {
				if runes[i] == '\'' {
					closed = true
					i++
					break
				}
				sb.WriteRune(runes[i])
				i++
			}
			if !closed {
				return nil, verr.New(verr.Syntax, "unterminated string literal starting at %q", string(runes[start:min(n, start+16)]))
			}
			out = append(out, token.Token{Kind: token.StringLiteral, Text: sb.String()})

		case unicode.IsDigit(c):
			start := i
			seenDot := false
			for i < n && (unicode.IsDigit(runes[i]) || (runes[i] == '.' && !seenDot)) {
				if runes[i] == '.' {
					seenDot = true
				}
				i++
			}
			text := string(runes[start:i])
			kind := token.IntLiteral
			if seenDot {
				kind = token.FloatLiteral
			}
			out = append(out, token.Token{Kind: kind, Text: text})

		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < n && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			if kind, ok := token.Lookup(word); ok {
				out = append(out, token.Token{Kind: kind, Text: word})
			} else {
				out = append(out, token.Token{Kind: token.Identifier, Text: word})
			}

		default:
			if kind, ok := singleChar[c]; ok {
				out = append(out, token.Token{Kind: kind, Text: string(c)})
				i++
			} else {
				return nil, verr.New(verr.Syntax, "unexpected character %q", string(c))
			}
		}
	}

	out = append(out, token.Token{Kind: token.EOF, Text: ""})
	return out, nil
}
