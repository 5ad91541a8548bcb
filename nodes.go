package grapher

import (
	"strconv"
	"strings"
)

// Expr is a parsed expression: an ordered list of signed terms in one
// variable. An Expr is immutable and safe for concurrent use.
type Expr struct {
	terms []Term
	// v is the variable symbol.
	v rune
}

// Terms returns a copy of the expression's terms in source order.
func (e *Expr) Terms() []Term {
	return append([]Term(nil), e.terms...)
}

// Var returns the variable symbol of the expression.
func (e *Expr) Var() rune {
	return e.v
}

func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	for i := range e.terms {
		t := &e.terms[i]
		if i > 0 && !t.neg {
			b.WriteByte('+')
		}
		t.fmt(b)
	}
}

// TermKind classifies a term.
type TermKind int8

const (
	// TermConst is a term with neither the variable nor a trig call, like 5
	// or 2^3.
	TermConst TermKind = iota
	// TermVar is a power of the variable with a numeric coefficient, like
	// -3x^2.
	TermVar
	// TermTrig is a term whose coefficient includes a trig call, like
	// 2sin(x^2)x.
	TermTrig
)

func (k TermKind) String() string {
	switch k {
	case TermConst:
		return "const"
	case TermVar:
		return "var"
	case TermTrig:
		return "trig"
	default:
		return "TermKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Term is one signed additive unit of an expression.
type Term struct {
	// coef is the multiplier of the variable factor. nil means 1.
	coef *coef
	// exp is the power applied to the variable, or to coef if the term has
	// no variable. Only meaningful if power is set.
	exp    int
	neg    bool
	hasVar bool
	power  bool
	v      rune
	src    TermText
}

// Kind returns the kind of the term.
func (t *Term) Kind() TermKind {
	switch {
	case t.coef.hastrig():
		return TermTrig
	case t.hasVar:
		return TermVar
	default:
		return TermConst
	}
}

// Neg returns whether the term is subtracted.
func (t *Term) Neg() bool {
	return t.neg
}

// HasVariable returns whether the variable is a factor of the term outside
// any trig argument.
func (t *Term) HasVariable() bool {
	return t.hasVar
}

// HasPower returns whether the term has a power marker outside any trig
// argument.
func (t *Term) HasPower() bool {
	return t.power
}

// Exponent returns the term's integer power. If the term has no power marker,
// the error is an *ExponentError with Missing set.
func (t *Term) Exponent() (int, error) {
	if !t.power {
		return 0, &ExponentError{Col: t.src.Col, Text: t.src.Text, Missing: true}
	}
	return t.exp, nil
}

// Source returns the text the term was parsed from.
func (t *Term) Source() TermText {
	return t.src
}

func (t *Term) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t *Term) fmt(b *strings.Builder) {
	if t.neg {
		b.WriteByte('-')
	}
	if t.coef == nil {
		if !t.hasVar {
			b.WriteByte('1')
		}
	} else {
		t.coef.fmt(b)
	}
	if t.hasVar {
		b.WriteRune(t.v)
	}
	if t.power {
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(t.exp))
	}
}

// coef is a node in the coefficient of a term.
type coef struct {
	kind coefKind

	// text is the literal for coefNum or the function name for coefTrig.
	text string
	num  float64
	// arg is the argument of a trig call.
	arg *Expr

	left  *coef
	right *coef
}

type coefKind int8

const (
	coefNone coefKind = iota

	coefNum  // num
	coefTrig // left (or 1 if nil) times text(arg)
	coefMul  // left times right
)

func (c *coef) hastrig() bool {
	if c == nil {
		return false
	}
	if c.kind == coefTrig {
		return true
	}
	return c.left.hastrig() || c.right.hastrig()
}

func (c *coef) fmt(b *strings.Builder) {
	switch c.kind {
	case coefNum:
		b.WriteString(c.text)
	case coefTrig:
		if c.left != nil {
			c.left.fmt(b)
		}
		b.WriteString(c.text)
		b.WriteByte('(')
		c.arg.fmt(b)
		b.WriteByte(')')
	case coefMul:
		c.left.fmt(b)
		c.right.fmt(b)
	default:
		panic("grapher: invalid coefficient kind " + strconv.Itoa(int(c.kind)))
	}
}
