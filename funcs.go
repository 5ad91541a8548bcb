package grapher

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// trigfuncs maps each recognized function name to its implementation.
var trigfuncs = map[string]func(float64) float64{
	"sin": math.Sin,
	"cos": math.Cos,
	"tan": math.Tan,
}

// pow computes b^n at the context's precision and rounds the result to the
// nearest float64.
func (ctx *Context) pow(b float64, n int) (float64, error) {
	switch {
	case math.IsNaN(b), math.IsInf(b, 0):
		return 0, &DomainError{X: b, Func: "^" + strconv.Itoa(n)}
	case n == 0:
		return 1, nil
	case b == 0:
		if n < 0 {
			return 0, &DomainError{X: b, Func: "^" + strconv.Itoa(n)}
		}
		return 0, nil
	}
	m := n
	if m < 0 {
		m = -m
	}
	x := new(big.Float).SetPrec(ctx.prec).SetFloat64(math.Abs(b))
	y := new(big.Float).SetPrec(ctx.prec).SetInt64(int64(m))
	// Pow may return a new value rather than its first argument, e.g. for an
	// exponent of 1 or when the result leaves the float64 range.
	z := bigfloat.Pow(new(big.Float).SetPrec(ctx.prec), x, y)
	if n < 0 {
		z.Quo(new(big.Float).SetPrec(ctx.prec).SetInt64(1), z)
	}
	r, _ := z.Float64()
	if b < 0 && m%2 == 1 {
		r = -r
	}
	return r, nil
}

// DomainError is an error returned when evaluation leaves the domain of
// float64 arithmetic, e.g. 0^-1 or an infinite result.
type DomainError struct {
	// X is the out-of-domain value. For a term whose result is not finite,
	// it is the value of the variable.
	X float64
	// Func is a name identifying the operation or term.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}
