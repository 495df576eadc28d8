// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/katalvlaran/qualg/operator"
	"github.com/katalvlaran/qualg/scalar"
	"github.com/katalvlaran/qualg/state"
)

// parser is a one-token-lookahead recursive-descent reader of the
// constructor form:
//
//	operator := "Operator" "(" [term {"," term}] ")"
//	term     := "Term" "(" base "," base "," scalar ")"
//	base     := "Qudit" "(" string "," int ")"
//	          | "Fock" "(" [op {"," op}] ")"
//	op       := "Op" "(" string "," string ")"
//	scalar   := "N" "(" float "," float ")"
//	          | "F" "(" string "," string "," bool ")"
//	          | "D" "(" string "," string ")"
//	          | "IP" "(" string "," string ")"
//	          | ("Prod" | "Sum") "(" scalar {"," scalar} ")"
//	          | "Integral" "(" string "," scalar {"," scalar} ")"
type parser struct {
	sc  scanner.Scanner
	tok rune
	err error
}

func parseOperator(src string) (*operator.Operator, error) {
	p := &parser{}
	p.sc.Init(strings.NewReader(src))
	p.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings
	p.sc.Error = func(s *scanner.Scanner, msg string) { p.fail("%s", msg) }
	p.next()

	op := p.operator()
	if p.err == nil && p.tok != scanner.EOF {
		p.fail("unexpected %s after operator", p.sc.TokenText())
	}
	if p.err != nil {
		return nil, p.err
	}
	return op, nil
}

func (p *parser) next() { p.tok = p.sc.Scan() }

// fail records the first error only.
func (p *parser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: col %d: %s", ErrSyntax, p.sc.Position.Column, fmt.Sprintf(format, args...))
	}
}

func (p *parser) expect(r rune) {
	if p.err != nil {
		return
	}
	if p.tok != r {
		p.fail("expected %q, found %q", r, p.sc.TokenText())
		return
	}
	p.next()
}

func (p *parser) ident() string {
	if p.err != nil {
		return ""
	}
	if p.tok != scanner.Ident {
		p.fail("expected name, found %q", p.sc.TokenText())
		return ""
	}
	name := p.sc.TokenText()
	p.next()
	return name
}

func (p *parser) keyword(name string) {
	if got := p.ident(); p.err == nil && got != name {
		p.fail("expected %s, found %s", name, got)
	}
}

func (p *parser) str() string {
	if p.err != nil {
		return ""
	}
	if p.tok != scanner.String {
		p.fail("expected string, found %q", p.sc.TokenText())
		return ""
	}
	s, err := strconv.Unquote(p.sc.TokenText())
	if err != nil {
		p.fail("%v", err)
		return ""
	}
	p.next()
	return s
}

func (p *parser) integer() int {
	if p.err != nil {
		return 0
	}
	if p.tok != scanner.Int {
		p.fail("expected integer, found %q", p.sc.TokenText())
		return 0
	}
	n, err := strconv.Atoi(p.sc.TokenText())
	if err != nil {
		p.fail("%v", err)
		return 0
	}
	p.next()
	return n
}

// float accepts an optional sign, Inf and NaN, as written by
// strconv.FormatFloat.
func (p *parser) float() float64 {
	if p.err != nil {
		return 0
	}
	sign := 1.0
	switch p.tok {
	case '-':
		sign = -1
		p.next()
	case '+':
		p.next()
	}
	switch p.tok {
	case scanner.Int, scanner.Float:
		f, err := strconv.ParseFloat(p.sc.TokenText(), 64)
		if err != nil {
			p.fail("%v", err)
			return 0
		}
		p.next()
		return sign * f
	case scanner.Ident:
		switch p.sc.TokenText() {
		case "Inf":
			p.next()
			return math.Inf(int(sign))
		case "NaN":
			p.next()
			return math.NaN()
		}
	}
	p.fail("expected number, found %q", p.sc.TokenText())
	return 0
}

func (p *parser) boolean() bool {
	switch name := p.ident(); name {
	case "true":
		return true
	case "false":
		return false
	default:
		p.fail("expected bool, found %s", name)
		return false
	}
}

// list parses item {"," item} up to the closing parenthesis, which it
// consumes. An empty list is allowed when allowEmpty is set.
func (p *parser) list(allowEmpty bool, item func()) {
	if allowEmpty && p.tok == ')' {
		p.next()
		return
	}
	for p.err == nil {
		item()
		if p.tok != ',' {
			break
		}
		p.next()
	}
	p.expect(')')
}

func (p *parser) operator() *operator.Operator {
	p.keyword("Operator")
	p.expect('(')
	var (
		bases []operator.Base
		coefs []scalar.Scalar
	)
	p.list(true, func() {
		b, c := p.term()
		bases = append(bases, b)
		coefs = append(coefs, c)
	})
	if p.err != nil {
		return nil
	}
	op, err := operator.New(bases, coefs)
	if err != nil {
		p.fail("%v", err)
		return nil
	}
	return op
}

func (p *parser) term() (operator.Base, scalar.Scalar) {
	p.keyword("Term")
	p.expect('(')
	left := p.base()
	p.expect(',')
	right := p.base()
	p.expect(',')
	c := p.scalar()
	p.expect(')')
	return operator.Base{Left: left, Right: right}, c
}

func (p *parser) base() state.Base {
	switch name := p.ident(); name {
	case "Qudit":
		p.expect('(')
		digits := p.str()
		p.expect(',')
		radix := p.integer()
		p.expect(')')
		if p.err != nil {
			return nil
		}
		q, err := state.NewQudit(digits, radix)
		if err != nil {
			p.fail("%v", err)
			return nil
		}
		return q
	case "Fock":
		p.expect('(')
		var ops []state.Op
		p.list(true, func() {
			p.keyword("Op")
			p.expect('(')
			mode := p.str()
			p.expect(',')
			variable := p.str()
			p.expect(')')
			ops = append(ops, state.Op{Mode: mode, Variable: variable})
		})
		if p.err != nil {
			return nil
		}
		f, err := state.NewFock(ops...)
		if err != nil {
			p.fail("%v", err)
			return nil
		}
		return f
	default:
		p.fail("unknown base state %s", name)
		return nil
	}
}

func (p *parser) scalar() scalar.Scalar {
	name := p.ident()
	p.expect('(')
	if p.err != nil {
		return nil
	}
	switch name {
	case "N":
		re := p.float()
		p.expect(',')
		im := p.float()
		p.expect(')')
		return scalar.Complex(complex(re, im))
	case "F":
		fn := p.str()
		p.expect(',')
		variable := p.str()
		p.expect(',')
		conj := p.boolean()
		p.expect(')')
		if conj {
			return scalar.NewConjFunc(fn, variable)
		}
		return scalar.NewFunc(fn, variable)
	case "D":
		a := p.str()
		p.expect(',')
		b := p.str()
		p.expect(')')
		if p.err != nil {
			return nil
		}
		d, err := scalar.NewDelta(a, b)
		if err != nil {
			p.fail("%v", err)
			return nil
		}
		return d
	case "IP":
		a := p.str()
		p.expect(',')
		b := p.str()
		p.expect(')')
		return scalar.NewInnerProduct(a, b)
	case "Prod", "Sum":
		xs := p.scalars()
		if p.err != nil {
			return nil
		}
		if name == "Prod" {
			return scalar.MulAll(xs...)
		}
		return scalar.AddAll(xs...)
	case "Integral":
		variable := p.str()
		p.expect(',')
		factors := p.scalars()
		if p.err != nil {
			return nil
		}
		in, err := scalar.NewIntegral(variable, scalar.MulAll(factors...))
		if err != nil {
			p.fail("%v", err)
			return nil
		}
		return in
	default:
		p.fail("unknown scalar %s", name)
		return nil
	}
}

// scalars parses a non-empty argument list and its closing parenthesis.
func (p *parser) scalars() []scalar.Scalar {
	var out []scalar.Scalar
	p.list(false, func() { out = append(out, p.scalar()) })
	return out
}
