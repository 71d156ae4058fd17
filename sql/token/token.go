// Package token defines the lexical token kinds recognized by venus-db's
// hand-written SQL tokenizer.
package token

import "strings"

// Kind classifies a Token.
type Kind int

const (
	EOF Kind = iota
	Identifier
	IntLiteral
	FloatLiteral
	StringLiteral

	// Punctuation / operators.
	Comma
	Dot
	Semicolon
	LParen
	RParen
	Eq
	Lt
	Gt
	Plus
	Minus
	Star
	Slash

	// Keywords, case-folded on match.
	Show
	Create
	Drop
	Use
	Database
	Databases
	Table
	Tables
	Select
	Insert
	Update
	Delete
	Into
	Values
	From
	Where
	Primary
	Key
	Join
	Group
	By
	Having
	Order
	As
	On
	Limit
	Offset
	Set
	Index
	Int
	Float
	Char
	Help
	Exit
	Exec
)

var keywords = map[string]Kind{
	"show":      Show,
	"create":    Create,
	"drop":      Drop,
	"use":       Use,
	"database":  Database,
	"databases": Databases,
	"table":     Table,
	"tables":    Tables,
	"select":    Select,
	"insert":    Insert,
	"update":    Update,
	"delete":    Delete,
	"into":      Into,
	"values":    Values,
	"from":      From,
	"where":     Where,
	"primary":   Primary,
	"key":       Key,
	"join":      Join,
	"group":     Group,
	"by":        By,
	"having":    Having,
	"order":     Order,
	"as":        As,
	"on":        On,
	"limit":     Limit,
	"offset":    Offset,
	"set":       Set,
	"index":     Index,
	"int":       Int,
	"float":     Float,
	"char":      Char,
	"help":      Help,
	"exit":      Exit,
	"exec":      Exec,
}

// Lookup case-folds word and returns its keyword Kind, or (Identifier,
// false) if it is not a reserved word.
func Lookup(word string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(word)]
	if !ok {
		return Identifier, false
	}
	return k, true
}

// Token is one lexed unit: a kind plus its literal source text.
type Token struct {
	Kind Kind
	Text string
}

// IsKeyword reports whether t.Kind names a reserved word.
func (t Token) IsKeyword() bool {
	_, ok := keywords[strings.ToLower(t.Text)]
	return ok && t.Kind != Identifier
}
