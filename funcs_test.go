package grapher

import (
	"errors"
	"math"
	"testing"
)

func TestPow(t *testing.T) {
	cases := []struct {
		name string
		b    float64
		n    int
		r    float64
	}{
		{"one", 3, 1, 3},
		{"neg-one", 4, -1, 0.25},
		{"neg-base-one", -5, 1, -5},
		{"neg-base-neg-one", -2, -1, -0.5},
		{"zero-exp", 7, 0, 1},
		{"zero-zero", 0, 0, 1},
		{"zero-base", 0, 3, 0},
		{"square", 3, 2, 9},
		{"cube", -2, 3, -8},
		{"even", -3, 4, 81},
		{"recip-square", 2, -2, 0.25},
		{"large", 10, 15, 1e15},
		{"fraction", 0.5, 10, 1.0 / 1024},
		{"underflow", 1e-200, 2, 0},
		{"underflow-neg", -1e-200, 3, 0},
		{"recip-overflow", 1e10, -400, 0},
	}
	for _, prec := range []uint{53, 64, 200} {
		ctx := NewContext(Prec(prec))
		for _, c := range cases {
			r, err := ctx.pow(c.b, c.n)
			if err != nil {
				t.Errorf("prec %d %s: %g^%d: %v", prec, c.name, c.b, c.n, err)
				continue
			}
			if d := math.Abs(r - c.r); d > 1e-12*math.Abs(c.r) {
				t.Errorf("prec %d %s: %g^%d: want %g, got %g", prec, c.name, c.b, c.n, c.r, r)
			}
		}
	}
}

func TestPowDomain(t *testing.T) {
	cases := []struct {
		name string
		b    float64
		n    int
	}{
		{"zero-recip", 0, -1},
		{"nan", math.NaN(), 2},
		{"inf", math.Inf(-1), 0},
	}
	ctx := NewContext()
	for _, c := range cases {
		r, err := ctx.pow(c.b, c.n)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("%s: %g^%d gave %g, %v", c.name, c.b, c.n, r, err)
		}
	}
	// Overflow is not a domain error for pow itself; the term rejects it.
	r, err := ctx.pow(1e10, 400)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(r, 1) {
		t.Errorf("1e10^400: want +Inf, got %g", r)
	}
}
