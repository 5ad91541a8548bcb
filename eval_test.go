package grapher_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/grapher"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		r    float64
	}{
		{"poly", "3x^2+2x-5", 2, 11},
		{"sin-zero", "sin(x)", 0, 0},
		{"neg-first", "-x+1", 3, -2},
		{"const", "5", 7, 5},
		{"neg-const", "-2.5", 1, -2.5},
		{"const-pow", "2^3", 0, 8},
		{"recip", "x^-1", 4, 0.25},
		{"odd-neg", "x^3", -2, -8},
		{"even-neg", "x^2", -3, 9},
		{"zero-pow", "x^0", 0, 1},
		{"unit-pow", "x^1", 3, 3},
		{"unit-pow-sum", "2x^1+1", 3, 7},
		{"unit-trig-pow", "sin(x)^1", 0.5, math.Sin(0.5)},
		{"unit-const-pow", "2^1", 0, 2},
		{"neg-unit-pow", "x^-1", -8, -0.125},
		{"underflow", "x^2", 1e-200, 0},
		{"recip-overflow", "x^-400", 1e10, 0},
		{"big-pow", "x^10", 10, 1e10},
		{"sin-pow", "sin(x^2)", 1.5, math.Sin(2.25)},
		{"coef-sin", "2sin(x)", 1, 2 * math.Sin(1)},
		{"cos", "cos(x)", math.Pi, -1},
		{"tan", "tan(x)", 1, math.Tan(1)},
		{"pythagoras", "sin(x)^2+cos(x)^2", 0.7, 1},
		{"neg-trig-pow", "-sin(x)^2", 0.5, -math.Sin(0.5) * math.Sin(0.5)},
		{"scaled-trig-pow", "2cos(x)^2", 0, 4},
		{"trig-times-poly", "sin(x^2)5x^3", 2, math.Sin(4) * 5 * 8},
		{"two-coefs", "2sin(x)3x", 1, 6 * math.Sin(1)},
		{"product", "sin(x)cos(x)", 0.4, math.Sin(0.4) * math.Cos(0.4)},
		{"nested", "sin(cos(x))", 0.3, math.Sin(math.Cos(0.3))},
		{"deep", "sin(cos(tan(x)))", 0.2, math.Sin(math.Cos(math.Tan(0.2)))},
		{"trig-sum", "2sin(x-1)-3", 1, -3},
		{"trig-arg-poly", "sin(2x+1)x^2", 0.5, math.Sin(2) * 0.25},
		{"spaces", "3 x ^ 2 - 1", 2, 11},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := grapher.Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			r, err := e.Eval(c.x)
			if err != nil {
				t.Fatalf("evaluating %q at %g: %v", c.src, c.x, err)
			}
			diff(t, c.r, r, approx)
		})
	}
}

func TestEvalConstants(t *testing.T) {
	consts := []struct {
		src string
		c   float64
	}{
		{"0", 0},
		{"1", 1},
		{"-1", -1},
		{"42", 42},
		{"0.125", 0.125},
		{"-1000.5", -1000.5},
		{".5", 0.5},
	}
	for _, c := range consts {
		e := grapher.MustParse(c.src)
		for _, x := range []float64{-100, -1, 0, 0.5, 3, 1e6} {
			r, err := e.Eval(x)
			if err != nil {
				t.Errorf("evaluating %q at %g: %v", c.src, x, err)
				continue
			}
			if r != c.c {
				t.Errorf("%q at %g: want %g, got %g", c.src, x, c.c, r)
			}
		}
	}
}

func TestEvalTrigPrecedence(t *testing.T) {
	a := grapher.MustParse("sin(x^2)")
	b := grapher.MustParse("2sin(x)")
	for _, v := range []float64{-3, -1, -0.5, 0, 0.5, 1, 2.5} {
		r, err := a.Eval(v)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, math.Sin(v*v), r, approx)
		r, err = b.Eval(v)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, 2*math.Sin(v), r, approx)
	}
}

func TestEvalDomain(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		term string
	}{
		{"recip-zero", "1-x^-1", 0, "-x^-1"},
		{"overflow", "x^400", 1e10, "x^400"},
		{"nested", "2+sin(x^-2)", 0, "sin(x^-2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := grapher.MustParse(c.src)
			r, err := e.Eval(c.x)
			if err == nil {
				t.Fatalf("%q at %g evaluated to %g without error", c.src, c.x, r)
			}
			var de *grapher.DomainError
			if !errors.As(err, &de) {
				t.Errorf("wrong error type %T: %v", err, err)
			}
			var te *grapher.TermError
			if !errors.As(err, &te) {
				t.Fatalf("error not attributed to a term: %v", err)
			}
			if te.Text != c.term {
				t.Errorf("wrong term: want %q, got %q", c.term, te.Text)
			}
		})
	}
}

func TestEvalSumOverflow(t *testing.T) {
	e := grapher.MustParse("x+x")
	_, err := e.Eval(1e308)
	var de *grapher.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("wrong error %T: %v", err, err)
	}
	var te *grapher.TermError
	if errors.As(err, &te) {
		t.Errorf("overflowing sum attributed to term %q", te.Text)
	}
}

func TestContextPrec(t *testing.T) {
	if p := grapher.NewContext().Prec(); p != 64 {
		t.Errorf("wrong default precision: want 64, got %d", p)
	}
	if p := grapher.NewContext(grapher.Prec(0)).Prec(); p != 64 {
		t.Errorf("wrong precision for 0: want 64, got %d", p)
	}
	ctx := grapher.NewContext(grapher.Prec(200))
	if p := ctx.Prec(); p != 200 {
		t.Errorf("wrong precision: want 200, got %d", p)
	}
	e := grapher.MustParse("x^3-2x^-2")
	r, err := ctx.Eval(e, 1.1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1.1*1.1*1.1-2/(1.1*1.1), r, approx)
}

func TestEvalString(t *testing.T) {
	r, err := grapher.EvalString("3x^2+2x-5", 2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 11.0, r, approx)
	if _, err := grapher.EvalString("sin(x", 0); err == nil {
		t.Error("unterminated call evaluated without error")
	} else {
		var me *grapher.MalformedError
		if !errors.As(err, &me) {
			t.Errorf("wrong error type %T: %v", err, err)
		}
	}
}
