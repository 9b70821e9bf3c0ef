package scalar

import (
	"fmt"
	"strconv"
)

// Expr is a symbolic scalar. Evaluating a unit system over Expr builds the
// expression tree of its dynamics instead of a number. The zero Expr is
// the literal 0.
type Expr struct {
	n *node
}

type node struct {
	op   byte // 0 literal, 's' symbol, '+', '-', '*', 'n' negate
	a, b *node
	lit  float64
	sym  string
}

// Lit returns a literal expression.
func Lit(v float64) Expr { return Expr{n: &node{lit: v}} }

// Sym returns a named symbolic variable.
func Sym(name string) Expr { return Expr{n: &node{op: 's', sym: name}} }

func (a Expr) Add(b Expr) Expr { return Expr{n: &node{op: '+', a: a.n, b: b.n}} }
func (a Expr) Sub(b Expr) Expr { return Expr{n: &node{op: '-', a: a.n, b: b.n}} }
func (a Expr) Mul(b Expr) Expr { return Expr{n: &node{op: '*', a: a.n, b: b.n}} }
func (a Expr) Neg() Expr       { return Expr{n: &node{op: 'n', a: a.n}} }

func (a Expr) Scale(k float64) Expr {
	return Expr{n: &node{op: '*', a: Lit(k).n, b: a.n}}
}

// String renders the expression in fully parenthesized infix form.
func (a Expr) String() string { return a.n.render() }

func (n *node) render() string {
	if n == nil {
		return "0"
	}
	switch n.op {
	case 0:
		return strconv.FormatFloat(n.lit, 'g', -1, 64)
	case 's':
		return n.sym
	case 'n':
		return fmt.Sprintf("(-%s)", n.a.render())
	default:
		return fmt.Sprintf("(%s %c %s)", n.a.render(), n.op, n.b.render())
	}
}
