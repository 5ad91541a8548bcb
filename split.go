package grapher

import (
	"strings"
	"unicode"
)

// TermText is the source of one signed term of an expression.
type TermText struct {
	// Text is the term without its sign or surrounding whitespace.
	Text string
	// Neg is whether the term is subtracted.
	Neg bool
	// Col is the position of the first rune of Text.
	Col int
}

func (t TermText) String() string {
	if t.Neg {
		return "-" + t.Text
	}
	return t.Text
}

// Split splits an expression into its additive terms in source order. A + or
// - inside parentheses, or directly following ^, does not end a term. The
// first term is negative only if the expression begins with -.
func Split(src string) ([]TermText, error) {
	return split(src, 1)
}

// split splits src, which begins at column col of the full input.
func split(src string, col int) ([]TermText, error) {
	var (
		terms []TermText
		buf   strings.Builder
		cur   TermText
		// open holds the columns of unclosed parentheses. The grammar has no
		// nested spans at the top level, but trig arguments may contain
		// their own calls.
		open  []int
		prev  rune
		begun bool
	)
	pos := col - 1
	flush := func(at int) error {
		cur.Text = strings.TrimRightFunc(buf.String(), unicode.IsSpace)
		buf.Reset()
		if cur.Text == "" {
			return &MalformedError{Col: at, Text: src, Reason: "empty term"}
		}
		terms = append(terms, cur)
		return nil
	}
	for _, r := range src {
		pos++
		if unicode.IsSpace(r) {
			if buf.Len() > 0 {
				buf.WriteRune(r)
			}
			continue
		}
		switch {
		case r == '(':
			open = append(open, pos)
		case r == ')':
			if len(open) == 0 {
				return nil, &MalformedError{Col: pos, Text: src, Reason: "close parenthesis with no open parenthesis"}
			}
			open = open[:len(open)-1]
		case (r == '+' || r == '-') && len(open) == 0 && prev != '^':
			if !begun {
				// Leading sign of the first term.
				cur.Neg = r == '-'
				begun = true
				prev = r
				continue
			}
			if err := flush(pos); err != nil {
				return nil, err
			}
			cur = TermText{Neg: r == '-'}
			prev = r
			continue
		}
		if buf.Len() == 0 {
			cur.Col = pos
		}
		buf.WriteRune(r)
		begun = true
		prev = r
	}
	if !begun {
		return nil, &MalformedError{Col: col, Text: src, Reason: "no expression"}
	}
	if len(open) > 0 {
		return nil, &MalformedError{Col: open[len(open)-1], Text: src, Reason: "open parenthesis with no close parenthesis"}
	}
	if err := flush(pos + 1); err != nil {
		return nil, err
	}
	return terms, nil
}

// Join reassembles split terms into an expression with the same value.
func Join(terms []TermText) string {
	var b strings.Builder
	for i, t := range terms {
		switch {
		case t.Neg:
			b.WriteByte('-')
		case i > 0:
			b.WriteByte('+')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
