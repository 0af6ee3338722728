package tinyexpr

import (
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// builtins is the registry of standard functions and constants. It is
// sorted by name and never mutated; lookupBuiltin binary-searches it.
// Every entry is pure.
var builtins = []symbol{
	{name: "abs", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Abs)},
	{name: "acos", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Acos)},
	{name: "asin", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Asin)},
	{name: "atan", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Atan)},
	{name: "atan2", kind: nodeFunction, arity: 2, pure: true, fn: fn2(math.Atan2)},
	{name: "cbrt", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Cbrt)},
	{name: "ceil", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Ceil)},
	{name: "cos", kind: nodeFunction, arity: 1, pure: true, op: opCos, fn: fn1(math.Cos)},
	{name: "cosh", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Cosh)},
	{name: "e", kind: nodeFunction, arity: 0, pure: true, fn: fn0(func() float64 { return math.E })},
	{name: "exp", kind: nodeFunction, arity: 1, pure: true, op: opExp, fn: fn1(math.Exp)},
	{name: "fac", kind: nodeFunction, arity: 1, pure: true, fn: fn1(factorial)},
	{name: "floor", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Floor)},
	{name: "gamma", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Gamma)},
	{name: "gcd", kind: nodeFunction, arity: 2, pure: true, fn: fn2(gcd)},
	{name: "ln", kind: nodeFunction, arity: 1, pure: true, op: opLn, fn: fn1(math.Log)},
	{name: "log", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Log10)},
	{name: "log10", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Log10)},
	{name: "log2", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Log2)},
	{name: "max", kind: nodeFunction, arity: 2, pure: true, fn: fn2(math.Max)},
	{name: "min", kind: nodeFunction, arity: 2, pure: true, fn: fn2(math.Min)},
	{name: "mod", kind: nodeFunction, arity: 2, pure: true, fn: fn2(math.Mod)},
	{name: "ncr", kind: nodeFunction, arity: 2, pure: true, fn: fn2(nChooseR)},
	{name: "npr", kind: nodeFunction, arity: 2, pure: true, fn: fn2(nPermuteR)},
	{name: "pi", kind: nodeFunction, arity: 0, pure: true, fn: fn0(func() float64 { return math.Pi })},
	{name: "pow", kind: nodeFunction, arity: 2, pure: true, op: opPow, fn: fn2(math.Pow)},
	{name: "sin", kind: nodeFunction, arity: 1, pure: true, op: opSin, fn: fn1(math.Sin)},
	{name: "sinh", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Sinh)},
	{name: "sqrt", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Sqrt)},
	{name: "tan", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Tan)},
	{name: "tanh", kind: nodeFunction, arity: 1, pure: true, fn: fn1(math.Tanh)},
}

// lookupBuiltin finds a builtin by exact name. Comparing whole names keeps
// "sin" from matching "sinh". With the NaturalLog option, "log" resolves to
// the "ln" entry, so expressions using either name build identical nodes.
func lookupBuiltin(name string, conf config) *symbol {
	if conf.natLog && name == "log" {
		name = "ln"
	}
	i, ok := slices.BinarySearchFunc(builtins, symbol{name: name}, func(a, b symbol) int {
		return strings.Compare(a.name, b.name)
	})
	if !ok {
		return nil
	}
	return &builtins[i]
}

// factorial returns a! for non-negative integer a, computed as the exact
// integer product so overflow reports +Inf rather than rounding away. For
// non-integer a >= 0 the result is gamma(a+1); negative a is NaN.
func factorial(a float64) float64 {
	if math.IsNaN(a) || a < 0 {
		return math.NaN()
	}
	if a != math.Trunc(a) {
		return math.Gamma(a + 1)
	}
	if a > math.MaxUint32 {
		return math.Inf(1)
	}
	ua := uint64(a)
	result := uint64(1)
	for i := uint64(1); i <= ua; i++ {
		if i > math.MaxUint64/result {
			return math.Inf(1)
		}
		result *= i
	}
	return float64(result)
}

// nChooseR returns the binomial coefficient C(n, r). Negative operands or
// n < r are NaN; operands beyond 2^32-1 or intermediate overflow are +Inf.
func nChooseR(n, r float64) float64 {
	if math.IsNaN(n) || math.IsNaN(r) || n < 0 || r < 0 || n < r {
		return math.NaN()
	}
	if n > math.MaxUint32 || r > math.MaxUint32 {
		return math.Inf(1)
	}
	un, ur := uint64(n), uint64(r)
	if ur > un/2 {
		ur = un - ur
	}
	result := uint64(1)
	for i := uint64(1); i <= ur; i++ {
		if result > math.MaxUint64/(un-ur+i) {
			return math.Inf(1)
		}
		result *= un - ur + i
		result /= i
	}
	return float64(result)
}

func nPermuteR(n, r float64) float64 {
	return nChooseR(n, r) * factorial(r)
}

// gcd runs the Euclidean algorithm on the truncated-to-unsigned operands.
func gcd(x, y float64) float64 {
	a, b := truncUnsigned(x), truncUnsigned(y)
	for b != 0 {
		a, b = b, a%b
	}
	return float64(a)
}

func truncUnsigned(x float64) uint64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return uint64(int64(x))
}
