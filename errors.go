package tinyexpr

import "strconv"

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError. Pos reports a 1-based byte
// offset into the expression identifying where scanning stopped: the offset
// just past the offending token, or 1 for inputs that fail at the first
// character (including empty input).
type InputError interface {
	error
	Pos() int
}

// LexError indicates an invalid token: an unrecognized character, a lone
// "=", or a malformed number.
type LexError struct {
	// Col is the offset just past the invalid text.
	Col int
	// Text is the text the lexer was scanning.
	Text string
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int { return err.Col }

// UnknownNameError indicates an identifier that matches neither a host
// binding nor a builtin.
type UnknownNameError struct {
	Col  int
	Name string
}

func (err *UnknownNameError) Error() string {
	return errpos(err.Col, "unknown name "+strconv.Quote(err.Name))
}

func (err *UnknownNameError) Pos() int { return err.Col }

// BracketError indicates a parenthesis that was opened but never closed.
type BracketError struct {
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "expected closing parenthesis")
}

func (err *BracketError) Pos() int { return err.Col }

// CallError indicates a function call with the wrong shape: a missing
// parenthesized argument list or the wrong number of arguments.
type CallError struct {
	Col int
	// Func is the name of the function being called.
	Func string
	// Arity is the number of arguments the function declares.
	Arity int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "call to "+err.Func+" needs "+strconv.Itoa(err.Arity)+" argument(s)")
}

func (err *CallError) Pos() int { return err.Col }

// UnexpectedTokenError indicates a token that cannot start or continue an
// expression, including trailing input after a complete expression and an
// expression that ends too early.
type UnexpectedTokenError struct {
	Col int
	// Token is the offending token's text, or "" at end of input.
	Token string
}

func (err *UnexpectedTokenError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int { return err.Col }

// DiffError indicates an operation the symbolic differentiator does not
// support. It carries no input position; the operation came from an already
// compiled tree.
type DiffError struct {
	// Name identifies the unsupported operation.
	Name string
}

func (err *DiffError) Error() string {
	return "cannot differentiate " + strconv.Quote(err.Name)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*UnknownNameError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
)
