package gettext

import (
	"fmt"
	"strconv"
	"strings"
)

// selectorFunc maps a count to a plural form index.
type selectorFunc func(n int) int

// compilePluralExpr compiles a gettext plural-selector expression into a
// selector function. The grammar is the C integer expression subset that
// Plural-Forms headers use: the variable n, integer literals, parentheses,
// ?:, ||, &&, ==, !=, <, <=, >, >=, +, -, *, /, %, and unary ! and -.
// Booleans follow C semantics (comparisons yield 1 or 0, any non-zero value
// is true). Division or modulo by zero evaluates to 0 rather than failing a
// request at lookup time.
func compilePluralExpr(expr string) (selectorFunc, error) {
	p := &exprParser{input: expr}
	node, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos:], p.pos)
	}
	return node, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// accept consumes tok if it is next in the input. Longer operators must be
// tried before their prefixes ("<=" before "<").
func (p *exprParser) accept(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], tok) {
		// Guard "<" against "<=" style overlap for single-char relational
		// tokens followed by '='.
		if len(tok) == 1 && (tok == "<" || tok == ">" || tok == "!") &&
			p.pos+1 < len(p.input) && p.input[p.pos+1] == '=' {
			return false
		}
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *exprParser) parseTernary() (selectorFunc, error) {
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.accept("?") {
		return cond, nil
	}
	then, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if !p.accept(":") {
		return nil, fmt.Errorf("missing ':' at offset %d", p.pos)
	}
	els, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return func(n int) int {
		if cond(n) != 0 {
			return then(n)
		}
		return els(n)
	}, nil
}

func (p *exprParser) parseOr() (selectorFunc, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept("||") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		l, r := left, right
		left = func(n int) int {
			if l(n) != 0 || r(n) != 0 {
				return 1
			}
			return 0
		}
	}
	return left, nil
}

func (p *exprParser) parseAnd() (selectorFunc, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.accept("&&") {
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		l, r := left, right
		left = func(n int) int {
			if l(n) != 0 && r(n) != 0 {
				return 1
			}
			return 0
		}
	}
	return left, nil
}

func (p *exprParser) parseEquality() (selectorFunc, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		var eq bool
		switch {
		case p.accept("=="):
			eq = true
		case p.accept("!="):
			eq = false
		default:
			return left, nil
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		l, r := left, right
		left = func(n int) int {
			if (l(n) == r(n)) == eq {
				return 1
			}
			return 0
		}
	}
}

func (p *exprParser) parseRelational() (selectorFunc, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var cmp func(a, b int) bool
		switch {
		case p.accept("<="):
			cmp = func(a, b int) bool { return a <= b }
		case p.accept(">="):
			cmp = func(a, b int) bool { return a >= b }
		case p.accept("<"):
			cmp = func(a, b int) bool { return a < b }
		case p.accept(">"):
			cmp = func(a, b int) bool { return a > b }
		default:
			return left, nil
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		l, r, c := left, right, cmp
		left = func(n int) int {
			if c(l(n), r(n)) {
				return 1
			}
			return 0
		}
	}
}

func (p *exprParser) parseAdditive() (selectorFunc, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var sub bool
		switch {
		case p.accept("+"):
			sub = false
		case p.accept("-"):
			sub = true
		default:
			return left, nil
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		l, r := left, right
		if sub {
			left = func(n int) int { return l(n) - r(n) }
		} else {
			left = func(n int) int { return l(n) + r(n) }
		}
	}
}

func (p *exprParser) parseMultiplicative() (selectorFunc, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch {
		case p.accept("*"):
			op = '*'
		case p.accept("/"):
			op = '/'
		case p.accept("%"):
			op = '%'
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		l, r := left, right
		switch op {
		case '*':
			left = func(n int) int { return l(n) * r(n) }
		case '/':
			left = func(n int) int {
				if d := r(n); d != 0 {
					return l(n) / d
				}
				return 0
			}
		default:
			left = func(n int) int {
				if d := r(n); d != 0 {
					return l(n) % d
				}
				return 0
			}
		}
	}
}

func (p *exprParser) parseUnary() (selectorFunc, error) {
	if p.accept("!") {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return func(n int) int {
			if operand(n) == 0 {
				return 1
			}
			return 0
		}, nil
	}
	if p.accept("-") {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return func(n int) int { return -operand(n) }, nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (selectorFunc, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	if p.accept("(") {
		node, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		if !p.accept(")") {
			return nil, fmt.Errorf("missing ')' at offset %d", p.pos)
		}
		return node, nil
	}
	if c := p.input[p.pos]; c == 'n' {
		p.pos++
		return func(n int) int { return n }, nil
	}
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.input[start:], start)
	}
	v, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return nil, err
	}
	return func(int) int { return v }, nil
}
