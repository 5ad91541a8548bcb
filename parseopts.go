package grapher

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// v is the variable symbol.
	v rune
}

type varopt rune

// Variable sets the symbol of the independent variable. The default is x.
// Parametric expressions conventionally use t. Variable panics if v is not a
// letter.
func Variable(v rune) ParseOption {
	if !unicode.IsLetter(v) {
		panic("grapher: cannot use " + strconv.QuoteRune(v) + " as a variable")
	}
	return varopt(v)
}

func (o varopt) parseOption(p parsectx) parsectx {
	p.v = rune(o)
	return p
}

func defaultparse(opts []ParseOption) parsectx {
	p := parsectx{v: 'x'}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}

// trignames is the set of function names the parser recognizes, in the order
// it tries them.
var trignames = []string{"sin", "cos", "tan"}

// trigname returns the trig function name at the start of s if it is
// immediately followed by an open parenthesis.
func trigname(s []rune) string {
	for _, name := range trignames {
		if len(s) > len(name) && string(s[:len(name)]) == name && s[len(name)] == '(' {
			return name
		}
	}
	return ""
}

// isnum reports whether r can appear in a numeric literal.
func isnum(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// quoteRest is a shortcut for error messages about trailing text.
func quoteRest(s []rune) string {
	return strconv.Quote(strings.TrimSpace(string(s)))
}
