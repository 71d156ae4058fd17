package lexer

import (
	"testing"

	"github.com/karthikeyaspace/venus-db/sql/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexKeywordsAndIdentifiersCaseInsensitive(t *testing.T) {
	toks, err := Lex("SeLeCt * from Users")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.Select, token.Star, token.From, token.Identifier, token.EOF}, kinds(toks))
}

func TestLexLiterals(t *testing.T) {
	toks, err := Lex("1 2.5 'hi there'")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.IntLiteral, token.FloatLiteral, token.StringLiteral, token.EOF}, kinds(toks))
	require.Equal(t, "hi there", toks[2].Text)
}

func TestLexUnterminatedStringFails(t *testing.T) {
	_, err := Lex("'unterminated")
	require.Error(t, err)
}

func TestLexUnexpectedCharacterFails(t *testing.T) {
	_, err := Lex("SELECT # FROM t")
	require.Error(t, err)
}

func TestLexCreateTableStatement(t *testing.T) {
	toks, err := Lex("CREATE TABLE users (id INT PRIMARY KEY, name CHAR)")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.Create, token.Table, token.Identifier, token.LParen,
		token.Identifier, token.Int, token.Primary, token.Key, token.Comma,
		token.Identifier, token.Char, token.RParen, token.EOF,
	}, kinds(toks))
}
