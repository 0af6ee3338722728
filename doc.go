// Package tinyexpr parses, optimizes, and evaluates infix math expressions
// over float64 values.
//
// An expression is compiled once against a table of host bindings (scalar
// variables, functions of up to seven arguments, and closures carrying host
// context) and can then be evaluated cheaply any number of times. Rebinding
// happens by writing through the bound scalar; recompilation is never
// required. Pure subtrees whose leaves are all constants are folded at
// compile time, and a compiled expression can be differentiated symbolically
// with respect to a bound variable.
//
// The grammar layers logical, bitwise, comparison, shift, and arithmetic
// operators, with "**" for exponentiation (right-associative unless the
// PowFromLeft option is given) and a no-parentheses shorthand for
// single-argument calls, so "sin x" parses as "sin(x)".
package tinyexpr
