// Package grapher evaluates sums of power terms in one variable, optionally
// multiplied by sin, cos, or tan of another such sum, and plots them on a
// character grid.
//
// An expression is a sequence of signed terms such as "3x^2+2x-5". Each term
// may begin with a numeric coefficient, then any number of trig calls, then
// another number, the variable, and an integer power: "2sin(x^2)5x^3" is
// 2·sin(x²)·5x³. Without the variable, a power applies to the whole
// coefficient, so "sin(x)^2" is sin(x)². Parentheses appear only around trig
// arguments.
//
// Parse an expression once and evaluate it for as many inputs as needed.
//
package grapher
