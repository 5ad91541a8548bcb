package grapher

import (
	"math"
)

// Context is a context for evaluating expressions. A Context is immutable and
// safe to use concurrently.
type Context struct {
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision in bits at which powers are computed before rounding
// to float64. Zero selects the default of 64.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case precopt:
			if opt != 0 {
				ctx.prec = uint(opt)
			}
		default:
			panic("grapher: unknown option type")
		}
	}
	return &ctx
}

var defaultctx = NewContext()

// Prec returns the precision to which powers are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates e with its variable set to x. Errors are wrapped in a
// *TermError identifying the term that failed. An expression whose value is
// not finite results in a *DomainError.
func (ctx *Context) Eval(e *Expr, x float64) (float64, error) {
	var r float64
	for i := range e.terms {
		t := &e.terms[i]
		v, err := t.eval(ctx, x)
		if err != nil {
			return 0, &TermError{Col: t.src.Col, Text: t.src.String(), Err: err}
		}
		r += v
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &DomainError{X: x, Func: e.String()}
	}
	return r, nil
}

// Eval evaluates e with its variable set to x using a default context.
func (e *Expr) Eval(x float64) (float64, error) {
	return defaultctx.Eval(e, x)
}

// EvalString is a shortcut to parse and evaluate an expression in x.
func EvalString(src string, x float64, opts ...ContextOption) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(e, x)
}

// eval computes the signed contribution of the term.
func (t *Term) eval(ctx *Context, x float64) (float64, error) {
	c, err := t.coef.resolve(ctx, x)
	if err != nil {
		return 0, err
	}
	var r float64
	switch {
	case t.hasVar && t.power:
		p, err := ctx.pow(x, t.exp)
		if err != nil {
			return 0, err
		}
		r = c * p
	case t.hasVar:
		r = c * x
	case t.power:
		r, err = ctx.pow(c, t.exp)
		if err != nil {
			return 0, err
		}
	default:
		r = c
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &DomainError{X: x, Func: t.String()}
	}
	if t.neg {
		r = -r
	}
	return r, nil
}

// resolve computes the value of the coefficient. A nil coefficient is 1.
func (c *coef) resolve(ctx *Context, x float64) (float64, error) {
	if c == nil {
		return 1, nil
	}
	switch c.kind {
	case coefNum:
		return c.num, nil
	case coefTrig:
		outer, err := c.left.resolve(ctx, x)
		if err != nil {
			return 0, err
		}
		a, err := ctx.Eval(c.arg, x)
		if err != nil {
			return 0, err
		}
		return outer * trigfuncs[c.text](a), nil
	case coefMul:
		l, err := c.left.resolve(ctx, x)
		if err != nil {
			return 0, err
		}
		r, err := c.right.resolve(ctx, x)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	default:
		panic("grapher: invalid coefficient kind")
	}
}
