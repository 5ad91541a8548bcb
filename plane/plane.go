// Package plane implements a quantized Cartesian plane that records sampled
// points and renders them as a grid of characters.
//
// A Plane covers [-xlen, xlen] × [-ylen, ylen] with xden cells per unit
// horizontally and yden cells per unit vertically. Row 0 is the top of the
// plane, so y indices grow downward.
package plane

import (
	"math"
	"strconv"
)

// Characters used to render cells.
const (
	Empty  = ' '
	Point  = '*'
	Origin = 'x'
)

// Axis selects the horizontal or vertical axis.
type Axis int8

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
}

// Cell is one lattice point of a plane.
type Cell struct {
	// X and Y are the coordinates the cell represents.
	X, Y float64
	// Filled is whether a sample has been marked in the cell.
	Filled bool
	// Origin is whether the cell is at (0, 0).
	Origin bool
}

// Char returns the character that renders the cell.
func (c Cell) Char() byte {
	switch {
	case !c.Filled:
		return Empty
	case c.Origin:
		return Origin
	default:
		return Point
	}
}

// Plane is a rectangular lattice of cells. The zero value is not usable; use
// New. A Plane is not safe for concurrent use.
type Plane struct {
	xlen, ylen int
	xden, yden int
	cols, rows int
	// cells is row-major.
	cells []Cell
}

// New creates an empty plane. All arguments must be positive; otherwise the
// error is a *SizeError.
func New(xlen, ylen, xden, yden int) (*Plane, error) {
	for _, d := range []struct {
		name string
		v    int
	}{{"x length", xlen}, {"y length", ylen}, {"x density", xden}, {"y density", yden}} {
		if d.v <= 0 {
			return nil, &SizeError{Name: d.name, Value: d.v}
		}
	}
	p := Plane{
		xlen: xlen,
		ylen: ylen,
		xden: xden,
		yden: yden,
		cols: 2*xlen*xden + 1,
		rows: 2*ylen*yden + 1,
	}
	p.cells = make([]Cell, p.cols*p.rows)
	for row := 0; row < p.rows; row++ {
		y := p.Coord(row, Y)
		for col := 0; col < p.cols; col++ {
			p.cells[row*p.cols+col] = Cell{
				X:      p.Coord(col, X),
				Y:      y,
				Origin: col == xlen*xden && row == ylen*yden,
			}
		}
	}
	return &p, nil
}

// Dims returns the number of columns and rows in the plane.
func (p *Plane) Dims() (cols, rows int) {
	return p.cols, p.rows
}

// XLen returns the length of the positive x axis.
func (p *Plane) XLen() int { return p.xlen }

// YLen returns the length of the positive y axis.
func (p *Plane) YLen() int { return p.ylen }

// XDensity returns the number of columns per unit.
func (p *Plane) XDensity() int { return p.xden }

// YDensity returns the number of rows per unit.
func (p *Plane) YDensity() int { return p.yden }

// findex is the unrounded-to-int form of Index.
func (p *Plane) findex(c float64, a Axis) float64 {
	switch a {
	case X:
		return math.Round(float64(p.xden)*c) + float64(p.xden*p.xlen)
	case Y:
		return float64(p.yden*p.ylen) - math.Round(float64(p.yden)*c)
	default:
		panic("plane: invalid axis " + a.String())
	}
}

// Index returns the column (for X) or row (for Y) containing the coordinate
// c. The result may be outside the plane; c must be finite.
func (p *Plane) Index(c float64, a Axis) int {
	return int(p.findex(c, a))
}

// Coord returns the coordinate represented by a column (for X) or row (for
// Y). It inverts Index to within half a cell.
func (p *Plane) Coord(i int, a Axis) float64 {
	switch a {
	case X:
		return -float64(p.xlen) + float64(i)/float64(p.xden)
	case Y:
		return float64(p.ylen) - float64(i)/float64(p.yden)
	default:
		panic("plane: invalid axis " + a.String())
	}
}

// In reports whether (x, y) lies in a cell of the plane.
func (p *Plane) In(x, y float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return false
	}
	col, row := p.findex(x, X), p.findex(y, Y)
	return 0 <= col && col < float64(p.cols) && 0 <= row && row < float64(p.rows)
}

// Mark fills the cell containing (x, y). Points outside the plane are
// ignored.
func (p *Plane) Mark(x, y float64) {
	if !p.In(x, y) {
		return
	}
	p.cells[p.Index(y, Y)*p.cols+p.Index(x, X)].Filled = true
}

// Filled reports whether the cell containing (x, y) is filled. Points outside
// the plane are never filled.
func (p *Plane) Filled(x, y float64) bool {
	if !p.In(x, y) {
		return false
	}
	return p.cells[p.Index(y, Y)*p.cols+p.Index(x, X)].Filled
}

// Cell returns the cell at a column and row. It panics if either is out of
// range.
func (p *Plane) Cell(col, row int) Cell {
	if col < 0 || col >= p.cols || row < 0 || row >= p.rows {
		panic("plane: cell (" + strconv.Itoa(col) + ", " + strconv.Itoa(row) + ") out of range")
	}
	return p.cells[row*p.cols+col]
}

// Clear empties every cell.
func (p *Plane) Clear() {
	for i := range p.cells {
		p.cells[i].Filled = false
	}
}

// Render returns the plane's rows from top to bottom, each a slice of one
// character per column.
func (p *Plane) Render() [][]byte {
	r := make([][]byte, p.rows)
	for row := range r {
		line := make([]byte, p.cols)
		for col, c := range p.cells[row*p.cols : (row+1)*p.cols] {
			line[col] = c.Char()
		}
		r[row] = line
	}
	return r
}

// SizeError is an error indicating a non-positive plane dimension.
type SizeError struct {
	// Name identifies the parameter.
	Name string
	// Value is the rejected value.
	Value int
}

func (err *SizeError) Error() string {
	return "plane: " + err.Name + " must be positive, not " + strconv.Itoa(err.Value)
}
