package grapher

import (
	"math"
	"strconv"
	"unicode"
)

// Term = [num] { trig '(' Expr ')' } [num] [var] ['^' ['+' | '-'] digits]
// Expr = ['+' | '-'] Term { ('+' | '-') Term }
// trig = "sin" | "cos" | "tan"

// Parse parses an expression so it can be evaluated for many values of its
// variable. Every error resulting from invalid input implements InputError.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := defaultparse(opts)
	return parse(src, 1, &p)
}

// MustParse is like Parse but panics if the expression is invalid.
func MustParse(src string, opts ...ParseOption) *Expr {
	e, err := Parse(src, opts...)
	if err != nil {
		panic("grapher: " + err.Error())
	}
	return e
}

// parse parses src, which starts at column col of the input.
func parse(src string, col int, p *parsectx) (*Expr, error) {
	tts, err := split(src, col)
	if err != nil {
		return nil, err
	}
	e := Expr{terms: make([]Term, 0, len(tts)), v: p.v}
	for _, tt := range tts {
		t, err := parseterm(tt, p)
		if err != nil {
			return nil, &TermError{Col: tt.Col, Text: tt.String(), Err: err}
		}
		e.terms = append(e.terms, t)
	}
	return &e, nil
}

// termscan walks the runes of a single term.
type termscan struct {
	src []rune
	i   int
	// col is the position of src[0] in the input.
	col int
}

func (s *termscan) skip() {
	for s.i < len(s.src) && unicode.IsSpace(s.src[s.i]) {
		s.i++
	}
}

// peek returns the next non-space rune without consuming it, or -1 at the
// end of the term.
func (s *termscan) peek() rune {
	s.skip()
	if s.i >= len(s.src) {
		return -1
	}
	return s.src[s.i]
}

func (s *termscan) pos() int {
	return s.col + s.i
}

func (s *termscan) rest() []rune {
	return s.src[s.i:]
}

// number scans a numeric literal, if there is one.
func (s *termscan) number() (*coef, error) {
	s.skip()
	start := s.i
	for s.i < len(s.src) && isnum(s.src[s.i]) {
		s.i++
	}
	if s.i == start {
		return nil, nil
	}
	text := string(s.src[start:s.i])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, &CoefficientError{Col: s.col + start, Text: text}
	}
	return &coef{kind: coefNum, text: text, num: f}, nil
}

// match finds the parenthesis closing the one at s.src[s.i]. The result is -1
// if there is none.
func (s *termscan) match() int {
	depth := 0
	for k := s.i; k < len(s.src); k++ {
		switch s.src[k] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return k
			}
		}
	}
	return -1
}

// exponent scans an optionally signed integer.
func (s *termscan) exponent() (int, bool) {
	s.skip()
	start := s.i
	if s.i < len(s.src) && (s.src[s.i] == '+' || s.src[s.i] == '-') {
		s.i++
	}
	digits := s.i
	for s.i < len(s.src) && '0' <= s.src[s.i] && s.src[s.i] <= '9' {
		s.i++
	}
	if s.i == digits {
		return 0, false
	}
	n, err := strconv.Atoi(string(s.src[start:s.i]))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseterm parses the text of one term. Only the text following the last
// trig call can contain the term's own variable and power.
func parseterm(tt TermText, p *parsectx) (Term, error) {
	s := termscan{src: []rune(tt.Text), col: tt.Col}
	t := Term{neg: tt.Neg, v: p.v, src: tt}
	c, err := s.number()
	if err != nil {
		return t, err
	}
	for {
		s.skip()
		name := trigname(s.rest())
		if name == "" {
			break
		}
		s.i += len(name)
		end := s.match()
		if end < 0 {
			return t, &MalformedError{Col: s.pos(), Text: tt.Text, Reason: "open parenthesis with no close parenthesis"}
		}
		arg, err := parse(string(s.src[s.i+1:end]), s.pos()+1, p)
		if err != nil {
			return t, err
		}
		c = &coef{kind: coefTrig, text: name, arg: arg, left: c}
		s.i = end + 1
	}
	if c.hastrig() {
		// A number between the last call and the variable, as in sin(x)5x.
		n, err := s.number()
		if err != nil {
			return t, err
		}
		if n != nil {
			c = &coef{kind: coefMul, left: c, right: n}
		}
	}
	if s.peek() == p.v {
		t.hasVar = true
		s.i++
	}
	if s.peek() == '^' {
		at := s.pos()
		s.i++
		exp, ok := s.exponent()
		if !ok {
			return t, &ExponentError{Col: at, Text: tt.Text}
		}
		if c == nil && !t.hasVar {
			return t, &MalformedError{Col: at, Text: tt.Text, Reason: "power with no base"}
		}
		t.power, t.exp = true, exp
	}
	if s.peek() != -1 {
		if !t.hasVar && !t.power {
			// Whatever precedes the variable is neither a number nor a
			// trig call.
			return t, &CoefficientError{Col: tt.Col, Text: tt.Text}
		}
		return t, &MalformedError{Col: s.pos(), Text: tt.Text, Reason: "unexpected " + quoteRest(s.rest())}
	}
	t.coef = c
	return t, nil
}
