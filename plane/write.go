package plane

import (
	"bytes"
	"io"
	"strconv"
)

// WriteTo writes the rendered plane to w, one newline-terminated line per row.
func (p *Plane) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	b.Grow((p.cols + 1) * p.rows)
	for _, line := range p.Render() {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.WriteTo(w)
}

// WriteFramed writes a header describing the scale and window of the plane,
// followed by the rendered plane inside a box.
func (p *Plane) WriteFramed(w io.Writer) (int64, error) {
	var b bytes.Buffer
	b.WriteString("X SCALE: 1 char = " + ftoa(1/float64(p.xden)) + " units.\n")
	b.WriteString("Y SCALE: 1 char = " + ftoa(1/float64(p.yden)) + " units.\n")
	b.WriteString("Window: -" + strconv.Itoa(p.xlen) + " < x < " + strconv.Itoa(p.xlen))
	b.WriteString(" | -" + strconv.Itoa(p.ylen) + " < y < " + strconv.Itoa(p.ylen) + "\n\n")
	border := func(l, r string) {
		b.WriteString(l)
		for i := 0; i < p.cols; i++ {
			b.WriteString("═")
		}
		b.WriteString(r)
		b.WriteByte('\n')
	}
	border("╔", "╗")
	for _, line := range p.Render() {
		b.WriteString("║")
		b.Write(line)
		b.WriteString("║\n")
	}
	border("╚", "╝")
	return b.WriteTo(w)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
