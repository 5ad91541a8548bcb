package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zephyrtronium/grapher"
	"github.com/zephyrtronium/grapher/plane"
)

func main() {
	log.SetFlags(0)
	var (
		outname, vname    string
		xlen, ylen        int
		xden, yden        int
		t0, t1            float64
		prec              int
		frame, verb, echo bool
	)
	flag.StringVar(&outname, "o", "", "output file (default stdout)")
	flag.IntVar(&xlen, "xlen", 10, "length of the positive x axis")
	flag.IntVar(&ylen, "ylen", 10, "length of the positive y axis")
	flag.IntVar(&xden, "xden", 2, "columns per unit")
	flag.IntVar(&yden, "yden", 1, "rows per unit")
	flag.Float64Var(&t0, "t0", 0, "start of the parameter for parametric plots")
	flag.Float64Var(&t1, "t1", 1, "end of the parameter for parametric plots")
	flag.StringVar(&vname, "var", "", "variable symbol (default x, or t for parametric plots)")
	flag.IntVar(&prec, "p", 64, "precision of powers in bits")
	flag.BoolVar(&frame, "frame", true, "print the scale and a border around the plot")
	flag.BoolVar(&verb, "v", false, "print every sampled point")
	flag.BoolVar(&echo, "echo", false, "print parsed expressions")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: grapher [flags] f(x) | grapher [flags] a(t) b(t)")
		flag.PrintDefaults()
	}
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if xlen*xden > 50 || ylen*yden > 50 {
		log.Printf("warning: a %dx%d plot may not fit a terminal", 2*xlen*xden+1, 2*ylen*yden+1)
	}

	srcs := flag.Args()
	if len(srcs) == 0 {
		var err error
		srcs, err = readlines(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
	}
	if len(srcs) != 1 && len(srcs) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	v := 'x'
	if len(srcs) == 2 {
		v = 't'
	}
	if vname != "" {
		r, n := utf8.DecodeRuneInString(vname)
		if n != len(vname) || !unicode.IsLetter(r) {
			log.Fatalf("variable must be a single letter, not %q", vname)
		}
		v = r
	}
	var exprs []*grapher.Expr
	for _, src := range srcs {
		e, err := grapher.Parse(src, grapher.Variable(v))
		if err != nil {
			log.Fatal(err)
		}
		if echo {
			fmt.Fprintln(os.Stderr, e)
		}
		exprs = append(exprs, e)
	}

	p, err := plane.New(xlen, ylen, xden, yden)
	if err != nil {
		log.Fatal(err)
	}
	pl := grapher.Plotter{
		Plane:   p,
		Context: grapher.NewContext(grapher.Prec(uint(prec))),
	}
	if verb {
		pl.Trace = func(x, y float64) {
			fmt.Fprintf(os.Stderr, "(%g , %g)\n", x, y)
		}
	}
	if len(exprs) == 1 {
		err = pl.Plot(exprs[0])
	} else {
		err = pl.PlotParametric(exprs[0], exprs[1], t0, t1)
	}
	if err != nil {
		log.Fatal(err)
	}

	out, err := outfile(outname)
	if err != nil {
		log.Fatal(err)
	}
	if frame {
		_, err = p.WriteFramed(out)
	} else {
		_, err = p.WriteTo(out)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}

// readlines reads up to two non-empty lines of expressions.
func readlines(r io.Reader) ([]string, error) {
	var srcs []string
	scan := bufio.NewScanner(r)
	for scan.Scan() && len(srcs) < 2 {
		if s := strings.TrimSpace(scan.Text()); s != "" {
			srcs = append(srcs, s)
		}
	}
	return srcs, scan.Err()
}

func outfile(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
