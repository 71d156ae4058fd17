// Package parser implements a recursive, predictive, one-token-lookahead
// parser over the lexer's token stream, producing the untyped AST defined
// in the ast package.
package parser

import (
	"github.com/karthikeyaspace/venus-db/sql/ast"
	"github.com/karthikeyaspace/venus-db/sql/lexer"
	"github.com/karthikeyaspace/venus-db/sql/token"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Parser holds the token stream and current position for one statement.
type Parser struct {
	toks []token.Token
	pos  int
}

// Parse tokenizes and parses a single SQL statement from query. A trailing
// ';' is optional; anything left over after the statement (besides EOF) is
// a syntax error.
func Parse(query string) (*ast.Node, error) {
	toks, err := lexer.Lex(query)
	if err != nil {
		return nil, err
	}
	p := &Parser{toks: toks}

	node, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == token.Semicolon {
		p.advance()
	}
	if p.peek().Kind != token.EOF {
		return nil, p.errorf("unexpected token %q after statement", p.peek().Text)
	}
	return node, nil
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.peek().Kind != kind {
		return token.Token{}, p.errorf("unexpected token %q", p.peek().Text)
	}
	return p.advance(), nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return verr.New(verr.Syntax, format, args...)
}

func (p *Parser) parseStatement() (*ast.Node, error) {
	switch p.peek().Kind {
	case token.Show:
		return p.parseShow()
	case token.Use:
		return p.parseUse()
	case token.Create:
		return p.parseCreate()
	case token.Drop:
		return p.parseDrop()
	case token.Select:
		return p.parseSelect()
	case token.Insert:
		return p.parseInsert()
	case token.Exit:
		p.advance()
		return ast.New(ast.Exit, ""), nil
	default:
		return nil, p.errorf("unexpected token %q", p.peek().Text)
	}
}

func (p *Parser) parseShow() (*ast.Node, error) {
	p.advance() // SHOW
	switch p.peek().Kind {
	case token.Databases:
		p.advance()
		return ast.New(ast.ShowDatabases, ""), nil
	case token.Tables:
		p.advance()
		return ast.New(ast.ShowTables, ""), nil
	default:
		return nil, p.errorf("expected DATABASES or TABLES, got %q", p.peek().Text)
	}
}

func (p *Parser) parseUse() (*ast.Node, error) {
	p.advance() // USE
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.UseDatabase, name.Text), nil
}

func (p *Parser) parseCreate() (*ast.Node, error) {
	p.advance() // CREATE
	switch p.peek().Kind {
	case token.Database:
		p.advance()
		name, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		return ast.New(ast.CreateDatabase, name.Text), nil
	case token.Table:
		return p.parseCreateTable()
	default:
		return nil, p.errorf("expected DATABASE or TABLE, got %q", p.peek().Text)
	}
}

func (p *Parser) parseCreateTable() (*ast.Node, error) {
	p.advance() // TABLE
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	var cols []*ast.Node
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)

		if p.peek().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, p.errorf("CREATE TABLE requires at least one column")
	}

	node := ast.New(ast.CreateTable, name.Text)
	node.Children = cols
	return node, nil
}

func (p *Parser) parseColumnDef() (*ast.Node, error) {
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	typTok := p.peek()
	if typTok.Kind != token.Int && typTok.Kind != token.Float && typTok.Kind != token.Char {
		return nil, p.errorf("expected column type, got %q", typTok.Text)
	}
	p.advance()

	value := name.Text + " " + typTok.Text
	if p.peek().Kind == token.Primary {
		p.advance()
		if _, err := p.expect(token.Key); err != nil {
			return nil, err
		}
		value += " PK"
	}
	return ast.New(ast.ColumnDef, value), nil
}

func (p *Parser) parseDrop() (*ast.Node, error) {
	p.advance() // DROP
	switch p.peek().Kind {
	case token.Database:
		p.advance()
		name, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		return ast.New(ast.DropDatabase, name.Text), nil
	case token.Table:
		p.advance()
		name, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		return ast.New(ast.DropTable, name.Text), nil
	default:
		return nil, p.errorf("expected DATABASE or TABLE, got %q", p.peek().Text)
	}
}

func (p *Parser) parseSelect() (*ast.Node, error) {
	p.advance() // SELECT

	var projections []*ast.Node
	if p.peek().Kind == token.Star {
		p.advance()
		projections = append(projections, ast.New(ast.ColumnRef, "*"))
	} else {
		for {
			col, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			projections = append(projections, ast.New(ast.ColumnRef, col.Text))
			if p.peek().Kind == token.Comma {
				p.advance()
				continue
			}
			break
		}
	}

	if _, err := p.expect(token.From); err != nil {
		return nil, err
	}
	table, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	projList := ast.New(ast.ProjectionList, "")
	projList.Children = projections
	tableRef := ast.New(ast.TableRef, table.Text)

	return ast.New(ast.Select, "", projList, tableRef), nil
}

func (p *Parser) parseInsert() (*ast.Node, error) {
	p.advance() // INSERT
	if _, err := p.expect(token.Into); err != nil {
		return nil, err
	}
	table, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Values); err != nil {
		return nil, err
	}

	values, err := p.parseValueTuple()
	if err != nil {
		return nil, err
	}

	// Bulk-insert (multiple parenthesized tuples) is not implemented here:
	// a second tuple is a syntax error.
	if p.peek().Kind == token.Comma {
		return nil, p.errorf("bulk INSERT with multiple value tuples is not supported")
	}

	node := ast.New(ast.Insert, table.Text)
	node.Children = values
	return node, nil
}

func (p *Parser) parseValueTuple() ([]*ast.Node, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	var values []*ast.Node
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		values = append(values, lit)
		if p.peek().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return values, nil
}

func (p *Parser) parseLiteral() (*ast.Node, error) {
	t := p.peek()
	switch t.Kind {
	case token.IntLiteral, token.FloatLiteral:
		p.advance()
		return ast.New(ast.ConstValue, t.Text), nil
	case token.StringLiteral:
		p.advance()
		node := ast.New(ast.ConstValue, t.Text)
		node.Quoted = true
		return node, nil
	// A bare minus sign before a numeric literal, e.g. "-1".
	case token.Minus:
		p.advance()
		num := p.peek()
		if num.Kind != token.IntLiteral && num.Kind != token.FloatLiteral {
			return nil, p.errorf("expected numeric literal after '-', got %q", num.Text)
		}
		p.advance()
		return ast.New(ast.ConstValue, "-"+num.Text), nil
	default:
		return nil, p.errorf("expected literal, got %q", t.Text)
	}
}
