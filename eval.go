package tinyexpr

import "math"

// eval walks the tree and returns its value. Children evaluate strictly
// left to right; the logical operators do not short-circuit. Malformed
// runtime states (nil subtree, arity out of range, missing function) yield
// NaN rather than an error.
func (n *node) eval() float64 {
	if n == nil {
		return math.NaN()
	}
	switch n.kind {
	case nodeConstant:
		return n.value
	case nodeVariable:
		if n.bound == nil {
			return math.NaN()
		}
		return *n.bound
	case nodeFunction, nodeClosure:
		if n.arity < 0 || n.arity > maxArity || len(n.args) != n.arity {
			return math.NaN()
		}
		var buf [maxArity]float64
		for i, a := range n.args {
			buf[i] = a.eval()
		}
		if n.kind == nodeClosure {
			if n.clo == nil {
				return math.NaN()
			}
			return n.clo(n.ctx, buf[:n.arity])
		}
		if n.fn == nil {
			return math.NaN()
		}
		return n.fn(buf[:n.arity])
	}
	return math.NaN()
}
