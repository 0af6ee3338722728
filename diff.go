package tinyexpr

// Symbolic differentiation over the compiled tree. Only the classic
// calculus rules are supported: constants, variables, negation, sin, cos,
// ln, exp, and the arithmetic operators + - * / **. Bitwise, comparison,
// logical, and host-supplied operations report a DiffError.

func diff(n *node, target *float64) (*node, error) {
	if n == nil {
		return nil, &DiffError{Name: "empty expression"}
	}
	switch n.kind {
	case nodeConstant:
		return newConstant(0), nil
	case nodeVariable:
		if n.bound == target {
			return newConstant(1), nil
		}
		return newConstant(0), nil
	case nodeFunction, nodeClosure:
		if n.arity == 0 {
			// Nullary symbols are constants as far as the derivative is
			// concerned, even impure ones.
			return newConstant(0), nil
		}
		if n.kind == nodeClosure || n.op == opNone {
			return nil, &DiffError{Name: n.name}
		}
		switch n.arity {
		case 1:
			return diff1(n, target)
		case 2:
			return diff2(n, target)
		}
	}
	return nil, &DiffError{Name: n.name}
}

func diff1(n *node, target *float64) (*node, error) {
	u := n.args[0]
	switch n.op {
	case opNegate, opSin, opCos, opLn, opExp:
	default:
		return nil, &DiffError{Name: n.name}
	}
	du, err := diff(u, target)
	if err != nil {
		return nil, err
	}
	switch n.op {
	case opNegate:
		// (-u)' = -(u')
		return unary(opNegate, du), nil
	case opSin:
		// (sin u)' = cos(u) * u'
		return binary(opMul, builtinCall("cos", u.copy()), du), nil
	case opCos:
		// (cos u)' = -(sin(u) * u')
		return unary(opNegate, binary(opMul, builtinCall("sin", u.copy()), du)), nil
	case opLn:
		// (ln u)' = u' / u
		return binary(opDiv, du, u.copy()), nil
	default: // opExp
		// (exp u)' = exp(u) * u'
		return binary(opMul, builtinCall("exp", u.copy()), du), nil
	}
}

func diff2(n *node, target *float64) (*node, error) {
	u, v := n.args[0], n.args[1]
	switch n.op {
	case opAdd, opSub, opMul, opDiv, opPow:
	default:
		return nil, &DiffError{Name: n.name}
	}
	du, err := diff(u, target)
	if err != nil {
		return nil, err
	}
	dv, err := diff(v, target)
	if err != nil {
		du.free()
		return nil, err
	}
	switch n.op {
	case opAdd, opSub:
		// (u ± v)' = u' ± v'
		return binary(n.op, du, dv), nil
	case opMul:
		// (u * v)' = u'*v + v'*u
		return binary(opAdd,
			binary(opMul, du, v.copy()),
			binary(opMul, dv, u.copy()),
		), nil
	case opDiv:
		// (u / v)' = (u'*v - v'*u) / v**2
		return binary(opDiv,
			binary(opSub,
				binary(opMul, du, v.copy()),
				binary(opMul, dv, u.copy()),
			),
			binary(opPow, v.copy(), newConstant(2)),
		), nil
	default: // opPow
		// (u ** v)' = u**v * (u'*v/u + v'*ln u)
		return binary(opMul,
			n.copy(),
			binary(opAdd,
				binary(opDiv, binary(opMul, du, v.copy()), u.copy()),
				binary(opMul, dv, builtinCall("ln", u.copy())),
			),
		), nil
	}
}

// builtinCall builds a call to a registry function, for derivative trees.
func builtinCall(name string, args ...*node) *node {
	return callNode(lookupBuiltin(name, config{}), args)
}
