package grapher

import (
	"strconv"
)

// MalformedError is an error indicating input that cannot be split into
// terms: an empty expression or term, or unbalanced parentheses. It
// implements InputError.
type MalformedError struct {
	// Col is the position of the problem.
	Col int
	// Text is the expression or term that is malformed.
	Text string
	// Reason describes what is wrong.
	Reason string
}

func (err *MalformedError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "malformed expression: "+err.Reason)
	}
	return errpos(err.Col, "malformed expression "+strconv.Quote(err.Text)+": "+err.Reason)
}

func (err *MalformedError) Pos() int {
	return err.Col
}

// ExponentError is an error indicating a power marker without a valid integer
// exponent, or a request for the exponent of a term that has none. It
// implements InputError.
type ExponentError struct {
	// Col is the position of the power marker, or of the term if Missing.
	Col int
	// Text is the term containing the exponent.
	Text string
	// Missing is true when the term has no power marker at all.
	Missing bool
}

func (err *ExponentError) Error() string {
	if err.Missing {
		return errpos(err.Col, "term "+strconv.Quote(err.Text)+" has no exponent")
	}
	return errpos(err.Col, "invalid exponent in "+strconv.Quote(err.Text))
}

func (err *ExponentError) Pos() int {
	return err.Col
}

// CoefficientError is an error indicating a coefficient that is neither a
// number nor a trig call. It implements InputError.
type CoefficientError struct {
	// Col is the position of the coefficient.
	Col int
	// Text is the coefficient that could not be resolved.
	Text string
}

func (err *CoefficientError) Error() string {
	return errpos(err.Col, "cannot resolve coefficient "+strconv.Quote(err.Text))
}

func (err *CoefficientError) Pos() int {
	return err.Col
}

// TermError attaches the source of a term to an error that occurred while
// parsing or evaluating it. It implements InputError if the wrapped error
// does; otherwise Pos returns the start of the term.
type TermError struct {
	// Col is the position of the start of the term.
	Col int
	// Text is the term, including its sign.
	Text string
	// Err is the cause.
	Err error
}

func (err *TermError) Error() string {
	return "in term " + strconv.Quote(err.Text) + ": " + err.Err.Error()
}

func (err *TermError) Unwrap() error {
	return err.Err
}

func (err *TermError) Pos() int {
	if ie, ok := err.Err.(InputError); ok {
		return ie.Pos()
	}
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

var (
	_ InputError = (*MalformedError)(nil)
	_ InputError = (*ExponentError)(nil)
	_ InputError = (*CoefficientError)(nil)
	_ InputError = (*TermError)(nil)
)
