package tinyexpr

import (
	"math"
	"testing"
)

func TestLookupBuiltin(t *testing.T) {
	cases := []struct {
		name  string
		arity int
	}{
		{"abs", 1}, {"atan", 1}, {"atan2", 2}, {"cbrt", 1},
		{"e", 0}, {"pi", 0}, {"gamma", 1}, {"gcd", 2},
		{"ln", 1}, {"log", 1}, {"log10", 1}, {"log2", 1},
		{"max", 2}, {"min", 2}, {"mod", 2}, {"ncr", 2}, {"npr", 2},
		{"pow", 2}, {"sin", 1}, {"sinh", 1}, {"tanh", 1},
	}
	for _, c := range cases {
		sym := lookupBuiltin(c.name, config{})
		if sym == nil {
			t.Errorf("no builtin %q", c.name)
			continue
		}
		if sym.name != c.name || sym.arity != c.arity {
			t.Errorf("lookup %q found %q/%d", c.name, sym.name, sym.arity)
		}
	}
	for _, name := range []string{"si", "sinn", "cos5", "Pi", "", "atan3"} {
		if sym := lookupBuiltin(name, config{}); sym != nil {
			t.Errorf("lookup %q found %q", name, sym.name)
		}
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		a    float64
		want float64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, c := range cases {
		if got := factorial(c.a); got != c.want {
			t.Errorf("fac(%g) = %g, want %g", c.a, got, c.want)
		}
	}
	if got := factorial(-1); !math.IsNaN(got) {
		t.Errorf("fac(-1) = %g, want NaN", got)
	}
	if got := factorial(math.NaN()); !math.IsNaN(got) {
		t.Errorf("fac(NaN) = %g, want NaN", got)
	}
	// 21! overflows uint64; the contract is +Inf, not a wrapped product.
	if got := factorial(21); !math.IsInf(got, 1) {
		t.Errorf("fac(21) = %g, want +Inf", got)
	}
	if got := factorial(1e10); !math.IsInf(got, 1) {
		t.Errorf("fac(1e10) = %g, want +Inf", got)
	}
	// Non-integer arguments follow the gamma function.
	if got, want := factorial(0.5), math.Gamma(1.5); got != want {
		t.Errorf("fac(0.5) = %g, want %g", got, want)
	}
}

func TestNChooseR(t *testing.T) {
	cases := []struct {
		n, r, want float64
	}{
		{6, 2, 15},
		{6, 4, 15},
		{10, 0, 1},
		{10, 10, 1},
		{52, 5, 2598960},
	}
	for _, c := range cases {
		if got := nChooseR(c.n, c.r); got != c.want {
			t.Errorf("ncr(%g,%g) = %g, want %g", c.n, c.r, got, c.want)
		}
	}
	for _, c := range [][2]float64{{-1, 0}, {0, -1}, {2, 4}} {
		if got := nChooseR(c[0], c[1]); !math.IsNaN(got) {
			t.Errorf("ncr(%g,%g) = %g, want NaN", c[0], c[1], got)
		}
	}
	if got := nChooseR(1e10, 2); !math.IsInf(got, 1) {
		t.Errorf("ncr(1e10,2) = %g, want +Inf", got)
	}
	// Large enough to overflow the running product.
	if got := nChooseR(1000, 500); !math.IsInf(got, 1) {
		t.Errorf("ncr(1000,500) = %g, want +Inf", got)
	}
}

func TestNPermuteR(t *testing.T) {
	if got := nPermuteR(6, 2); got != 30 {
		t.Errorf("npr(6,2) = %g, want 30", got)
	}
	if got := nPermuteR(5, 5); got != 120 {
		t.Errorf("npr(5,5) = %g, want 120", got)
	}
	if got := nPermuteR(2, 4); !math.IsNaN(got) {
		t.Errorf("npr(2,4) = %g, want NaN", got)
	}
}

func TestGCD(t *testing.T) {
	cases := []struct {
		x, y, want float64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{4.6, 12, 4}, // operands truncate
	}
	for _, c := range cases {
		if got := gcd(c.x, c.y); got != c.want {
			t.Errorf("gcd(%g,%g) = %g, want %g", c.x, c.y, got, c.want)
		}
	}
}

func TestBitwiseNotMask(t *testing.T) {
	if got := bitwiseNot(0); got != 9007199254740991 {
		t.Errorf("~0 = %g", got)
	}
	if got := bitwiseNot(-1023); got != 1022 {
		t.Errorf("~-1023 = %g", got)
	}
	// Every result fits the 53-bit window.
	for _, x := range []float64{0, 1, -1, 1e15, -1e15, 9007199254740991} {
		got := bitwiseNot(x)
		if got < 0 || got > 9007199254740991 {
			t.Errorf("~%g = %g escapes the mantissa window", x, got)
		}
	}
}

func TestToint(t *testing.T) {
	cases := []struct {
		x    float64
		want int64
	}{
		{0, 0},
		{1.4, 1},
		{1.5, 2},
		{2.5, 2}, // ties to even
		{-2.5, -2},
		{-1.5, -2},
		{1e15, 1000000000000000},
	}
	for _, c := range cases {
		if got := toint(c.x); got != c.want {
			t.Errorf("toint(%g) = %d, want %d", c.x, got, c.want)
		}
	}
}
