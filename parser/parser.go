/*
File   : spylang/parser/parser.go

Parser is a recursive-descent parser over the token stream the lexer
produces, one function per grammar level (statements -> statement ->
expr -> comp_expr -> arith -> term -> factor -> power -> call -> atom).
Grounded on the teacher's habit of threading an explicit current/next
token pair and collecting errors with source position (see
go-mix/parser/parser.go's advance/expectAdvance), adapted here to a
true grammar-level recursive descent rather than a Pratt table, since
that is the shape this grammar needs.
*/
package parser

import (
	"fmt"

	"spylang/langerr"
	"spylang/lexer"
)

// Parser consumes a fixed token slice and builds an AST, or fails with
// the first syntax error it hits (it does not attempt recovery — like
// the teacher's parser, a single bad token aborts the parse).
type Parser struct {
	tokens []lexer.Token
	idx    int
	cur    lexer.Token
}

// New creates a Parser over tokens, which must end in an EOF token (as
// produced by lexer.Lexer.Tokenize).
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.cur = p.tokens[0]
	return p
}

func (p *Parser) advance() {
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	p.cur = p.tokens[p.idx]
}

// skipNewlines consumes any run of statement-separator newlines; the
// grammar treats blank lines between statements as insignificant.
func (p *Parser) skipNewlines() {
	for p.cur.Kind == lexer.NEWLINE {
		p.advance()
	}
}

func (p *Parser) errorf(format string, args ...any) *langerr.Error {
	start, end := p.cur.Start, p.cur.End
	return langerr.New(langerr.InvalidSyntax, start, end, fmt.Sprintf(format, args...))
}

func (p *Parser) expect(kind lexer.TokenType) (lexer.Token, *langerr.Error) {
	if p.cur.Kind != kind {
		return lexer.Token{}, p.errorf("expected %s, got %s", kind, p.cur.Kind)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

func (p *Parser) expectKeyword(word string) (lexer.Token, *langerr.Error) {
	if !p.cur.Matches(lexer.KEYWORD, word) {
		return lexer.Token{}, p.errorf("expected '%s', got %s", word, p.cur.Kind)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// Parse runs the full program -> statements grammar and expects to
// land on EOF; anything left over is a syntax error.
func (p *Parser) Parse() ([]Node, *langerr.Error) {
	stmts, err := p.statements()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.EOF {
		return nil, p.errorf("unexpected token %s", p.cur.Kind)
	}
	return stmts, nil
}

// statements parses a run of statements separated by newlines, up to
// (but not consuming) a terminator token (EOF or a closing brace left
// to the caller).
func (p *Parser) statements() ([]Node, *langerr.Error) {
	var stmts []Node
	p.skipNewlines()
	for !p.atStatementsEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	return stmts, nil
}

func (p *Parser) atStatementsEnd() bool {
	return p.cur.Kind == lexer.EOF || p.cur.Kind == lexer.RCURLY
}

// block parses `{ statements }`.
func (p *Parser) block() ([]Node, *langerr.Error) {
	if _, err := p.expect(lexer.LCURLY); err != nil {
		return nil, err
	}
	stmts, err := p.statements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RCURLY); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) statement() (Node, *langerr.Error) {
	start := p.cur.Start

	switch {
	case p.cur.Matches(lexer.KEYWORD, "extract"):
		p.advance()
		if p.cur.Kind == lexer.NEWLINE || p.cur.Kind == lexer.EOF || p.cur.Kind == lexer.RCURLY {
			return ReturnNode{base: base{start, p.cur.Start}}, nil
		}
		val, err := p.expr()
		if err != nil {
			return nil, err
		}
		_, end := val.Pos()
		return ReturnNode{base: base{start, end}, Value: val}, nil

	case p.cur.Matches(lexer.KEYWORD, "proceed"):
		end := p.cur.End
		p.advance()
		return ContinueNode{base: base{start, end}}, nil

	case p.cur.Matches(lexer.KEYWORD, "abort"):
		end := p.cur.End
		p.advance()
		return BreakNode{base: base{start, end}}, nil

	default:
		return p.expr()
	}
}

func (p *Parser) expr() (Node, *langerr.Error) {
	start := p.cur.Start

	if p.cur.Matches(lexer.KEYWORD, "assign") {
		p.advance()
		nameTok, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.EQ); err != nil {
			return nil, err
		}
		val, err := p.expr()
		if err != nil {
			return nil, err
		}
		_, end := val.Pos()
		return VarAssignNode{base: base{start, end}, Name: nameTok.Str, Value: val, Declare: true}, nil
	}

	// bare reassignment: IDENTIFIER '=' expr, distinguished from a
	// comparison expression by looking ahead past the identifier.
	if p.cur.Kind == lexer.IDENTIFIER && p.peekIsBareAssign() {
		nameTok := p.cur
		p.advance()
		p.advance() // '='
		val, err := p.expr()
		if err != nil {
			return nil, err
		}
		_, end := val.Pos()
		return VarAssignNode{base: base{start, end}, Name: nameTok.Str, Value: val, Declare: false}, nil
	}

	left, err := p.compExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Matches(lexer.KEYWORD, "and") || p.cur.Matches(lexer.KEYWORD, "or") {
		op := p.cur.Str
		p.advance()
		right, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		s, _ := left.Pos()
		_, e := right.Pos()
		left = BinOpNode{base: base{s, e}, Left: left, Right: right, Op: op}
	}
	return left, nil
}

func (p *Parser) peekIsBareAssign() bool {
	if p.idx+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.idx+1].Kind == lexer.EQ
}

func (p *Parser) compExpr() (Node, *langerr.Error) {
	if p.cur.Matches(lexer.KEYWORD, "not") {
		start := p.cur.Start
		p.advance()
		operand, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		_, end := operand.Pos()
		return UnaryOpNode{base: base{start, end}, Op: "not", Operand: operand}, nil
	}

	left, err := p.arithExpr()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.cur.Kind) {
		op := string(p.cur.Kind)
		p.advance()
		right, err := p.arithExpr()
		if err != nil {
			return nil, err
		}
		s, _ := left.Pos()
		_, e := right.Pos()
		left = BinOpNode{base: base{s, e}, Left: left, Right: right, Op: op}
	}
	return left, nil
}

func isComparisonOp(k lexer.TokenType) bool {
	switch k {
	case lexer.EE, lexer.NE, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE:
		return true
	}
	return false
}

func (p *Parser) arithExpr() (Node, *langerr.Error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.MINUS {
		op := string(p.cur.Kind)
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		s, _ := left.Pos()
		_, e := right.Pos()
		left = BinOpNode{base: base{s, e}, Left: left, Right: right, Op: op}
	}
	return left, nil
}

func (p *Parser) term() (Node, *langerr.Error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.MUL || p.cur.Kind == lexer.DIV || p.cur.Kind == lexer.MOD {
		op := string(p.cur.Kind)
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		s, _ := left.Pos()
		_, e := right.Pos()
		left = BinOpNode{base: base{s, e}, Left: left, Right: right, Op: op}
	}
	return left, nil
}

func (p *Parser) factor() (Node, *langerr.Error) {
	if p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.MINUS {
		start := p.cur.Start
		op := string(p.cur.Kind)
		p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		_, end := operand.Pos()
		return UnaryOpNode{base: base{start, end}, Op: op, Operand: operand}, nil
	}
	return p.power()
}

// power is right-associative: 2^3^2 == 2^(3^2), achieved by recursing
// back into factor on the right-hand side.
func (p *Parser) power() (Node, *langerr.Error) {
	left, err := p.call()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == lexer.POW {
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		s, _ := left.Pos()
		_, e := right.Pos()
		return BinOpNode{base: base{s, e}, Left: left, Right: right, Op: string(lexer.POW)}, nil
	}
	return left, nil
}

func (p *Parser) call() (Node, *langerr.Error) {
	atomNode, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.LPAREN {
		start, _ := atomNode.Pos()
		p.advance()
		var args []Node
		if p.cur.Kind != lexer.RPAREN {
			for {
				arg, err := p.expr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.cur.Kind != lexer.COMMA {
					break
				}
				p.advance()
			}
		}
		end := p.cur.End
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		atomNode = CallNode{base: base{start, end}, Callee: atomNode, Args: args}
	}
	return atomNode, nil
}

func (p *Parser) atom() (Node, *langerr.Error) {
	tok := p.cur
	start := tok.Start

	switch {
	case tok.Kind == lexer.INT:
		p.advance()
		return NumberNode{base: base{start, tok.End}, Int: tok.Int}, nil

	case tok.Kind == lexer.FLOAT:
		p.advance()
		return NumberNode{base: base{start, tok.End}, IsFloat: true, Float: tok.Float}, nil

	case tok.Kind == lexer.STRING:
		p.advance()
		return StringNode{base: base{start, tok.End}, Value: tok.Str}, nil

	case tok.Kind == lexer.IDENTIFIER:
		p.advance()
		return VarAccessNode{base: base{start, tok.End}, Name: tok.Str}, nil

	case tok.Kind == lexer.LPAREN:
		p.advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case tok.Kind == lexer.LSQUARE:
		return p.listExpr()

	case tok.Matches(lexer.KEYWORD, "check"):
		return p.ifExpr()

	case tok.Matches(lexer.KEYWORD, "each"):
		return p.forExpr()

	case tok.Matches(lexer.KEYWORD, "chase"):
		return p.whileExpr()

	case tok.Matches(lexer.KEYWORD, "mission"):
		return p.funcDef()

	default:
		return nil, p.errorf("unexpected token %s in expression", tok.Kind)
	}
}

// listExpr parses `[e1, e2, ...]`, and — when the sole element is
// itself a RangeNode produced by `e1..e2` — returns that RangeNode
// unwrapped so `each x in 1..5` can feed a range directly without a
// literal list wrapper.
func (p *Parser) listExpr() (Node, *langerr.Error) {
	start := p.cur.Start
	p.advance()

	var elements []Node
	if p.cur.Kind != lexer.RSQUARE {
		for {
			el, err := p.rangeOrExpr()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
			if p.cur.Kind != lexer.COMMA {
				break
			}
			p.advance()
		}
	}
	end := p.cur.End
	if _, err := p.expect(lexer.RSQUARE); err != nil {
		return nil, err
	}
	if len(elements) == 1 {
		if rn, ok := elements[0].(RangeNode); ok {
			return rn, nil
		}
	}
	return ListNode{base: base{start, end}, Elements: elements}, nil
}

// rangeOrExpr parses an expr and, if followed by `..`, turns it into a
// RangeNode.
func (p *Parser) rangeOrExpr() (Node, *langerr.Error) {
	start := p.cur.Start
	first, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.RANGE {
		return first, nil
	}
	p.advance()
	second, err := p.expr()
	if err != nil {
		return nil, err
	}
	_, end := second.Pos()
	return RangeNode{base: base{start, end}, StartExpr: first, EndExpr: second}, nil
}

func (p *Parser) ifExpr() (Node, *langerr.Error) {
	start := p.cur.Start
	var ifNode IfNode
	ifNode.Start = start

	if _, err := p.expectKeyword("check"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	ifNode.Cases = append(ifNode.Cases, IfCase{Condition: cond, Body: body})
	ifNode.End = p.cur.Start

	// A `followup`/`otherwise` may start on a later line than the closing
	// brace; the newlines are consumed only when one of them follows.
	skipToContinuation := func() {
		saved := p.idx
		p.skipNewlines()
		if !p.cur.Matches(lexer.KEYWORD, "followup") && !p.cur.Matches(lexer.KEYWORD, "otherwise") {
			p.idx = saved
			p.cur = p.tokens[saved]
		}
	}
	skipToContinuation()

	for p.cur.Matches(lexer.KEYWORD, "followup") {
		p.advance()
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		ifNode.Cases = append(ifNode.Cases, IfCase{Condition: cond, Body: body})
		ifNode.End = p.cur.Start
		skipToContinuation()
	}

	if p.cur.Matches(lexer.KEYWORD, "otherwise") {
		p.advance()
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		ifNode.ElseBody = body
		ifNode.HasElse = true
		ifNode.End = p.cur.Start
	}

	return ifNode, nil
}

// forExpr parses `each <name> in <iterable-expr> { body }`.
func (p *Parser) forExpr() (Node, *langerr.Error) {
	start := p.cur.Start
	if _, err := p.expectKeyword("each"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	iterable, err := p.rangeOrExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ForNode{base: base{start, p.cur.Start}, VarName: nameTok.Str, Iterable: iterable, Body: body}, nil
}

// whileExpr parses `chase <condition> { body }`, where the condition
// may itself be an `and`-chain of sub-conditions (the normal expr
// grammar already supports that, so there's nothing special here).
func (p *Parser) whileExpr() (Node, *langerr.Error) {
	start := p.cur.Start
	if _, err := p.expectKeyword("chase"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return WhileNode{base: base{start, p.cur.Start}, Condition: cond, Body: body}, nil
}

// funcDef parses `mission [name](params) { body }`.
func (p *Parser) funcDef() (Node, *langerr.Error) {
	start := p.cur.Start
	if _, err := p.expectKeyword("mission"); err != nil {
		return nil, err
	}

	name := ""
	if p.cur.Kind == lexer.IDENTIFIER {
		name = p.cur.Str
		p.advance()
	}

	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	if p.cur.Kind != lexer.RPAREN {
		for {
			paramTok, err := p.expect(lexer.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Str)
			if p.cur.Kind != lexer.COMMA {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return FuncDefNode{
		base:       base{start, p.cur.Start},
		Name:       name,
		ParamNames: params,
		Body:       body,
		AutoReturn: false,
	}, nil
}
