package tinyexpr

import (
	"io"
	"math"
	"os"
)

// Expr is a compiled expression. It holds read-only references to the host
// scalars and closure contexts it was compiled against; the host must keep
// those alive for as long as the Expr. Evaluating the same Expr from
// several goroutines is safe only while no bound scalar is being written.
type Expr struct {
	n *node
}

// Compile parses an expression against a binding table, constant-folds it,
// and returns the compiled tree. On failure the error implements
// InputError, whose Pos is the 1-based offset where parsing stopped.
//
// The binding table is only consulted during compilation; the returned
// tree retains the scalar, function, and context references it needs but
// not the table itself.
func Compile(expression string, bindings []Binding, opts ...Option) (*Expr, error) {
	var conf config
	for _, o := range opts {
		conf = o.option(conf)
	}
	n, err := compile(expression, bindings, conf)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// Interp compiles an expression with no bindings, evaluates it, and frees
// it. On failure the result is NaN and the error carries the input
// position.
func Interp(expression string, opts ...Option) (float64, error) {
	e, err := Compile(expression, nil, opts...)
	if err != nil {
		return math.NaN(), err
	}
	v := e.Eval()
	e.Free()
	return v, nil
}

// Eval evaluates the compiled expression with the current values of its
// bound scalars. Evaluating a nil or freed expression yields NaN.
func (e *Expr) Eval() float64 {
	if e == nil {
		return math.NaN()
	}
	return e.n.eval()
}

// Free releases the expression tree. Safe on nil; the expression must not
// be used afterward.
func (e *Expr) Free() {
	if e == nil {
		return
	}
	e.n.free()
	e.n = nil
}

// Copy deep-copies the expression. The clone shares the bound scalars and
// closure contexts of the original and evaluates identically under all
// bindings. It must be freed separately.
func (e *Expr) Copy() *Expr {
	if e == nil || e.n == nil {
		return nil
	}
	return &Expr{n: e.n.copy()}
}

// Print writes a debugging dump of the tree to stdout, one node per line.
func (e *Expr) Print() {
	e.fprint(os.Stdout)
}

func (e *Expr) fprint(w io.Writer) {
	if e == nil {
		return
	}
	e.n.dump(w, 0)
}

// Differentiate returns the partial derivative of the expression with
// respect to the variable of binding v, as a new optimized expression. The
// original is left untouched. Operations without a differentiation rule
// (bitwise, comparison, logical, host functions, ...) yield a DiffError.
func Differentiate(e *Expr, v Binding) (*Expr, error) {
	if e == nil || e.n == nil {
		return nil, &DiffError{Name: "empty expression"}
	}
	if v.sym.kind != nodeVariable || v.sym.bound == nil {
		return nil, &DiffError{Name: "non-variable binding " + v.sym.name}
	}
	n, err := diff(e.n, v.sym.bound)
	if err != nil {
		return nil, err
	}
	optimize(n)
	return &Expr{n: n}, nil
}

// Binding is one entry of the table of host-provided names consulted while
// compiling: a scalar variable, a function of 0 to 7 arguments, or a
// closure carrying an opaque host context. Construct bindings with Var,
// FuncN, and ClosureN.
type Binding struct {
	sym symbol
}

// Name returns the name the binding was declared with.
func (b Binding) Name() string { return b.sym.name }

// Pure marks a function or closure binding as pure: its result depends
// only on its arguments (and, for closures, a context that is stable
// across evaluations), so the optimizer may fold calls with constant
// arguments at compile time. Host bindings are impure by default.
func (b Binding) Pure() Binding {
	b.sym.pure = true
	return b
}

// Var binds name to a host-owned scalar. The expression reads the scalar
// at every evaluation, so the host can rebind by storing through addr; the
// scalar must outlive every expression compiled against it.
func Var(name string, addr *float64) Binding {
	return Binding{symbol{name: name, kind: nodeVariable, bound: addr}}
}

func funcBinding(name string, arity int, fn fnN) Binding {
	return Binding{symbol{name: name, kind: nodeFunction, arity: arity, fn: fn}}
}

// Func0 binds name to a function of no arguments.
func Func0(name string, fn func() float64) Binding {
	return funcBinding(name, 0, fn0(fn))
}

// Func1 binds name to a function of one argument. Arity-1 functions may be
// called without parentheses: "f x" parses as "f(x)".
func Func1(name string, fn func(a float64) float64) Binding {
	return funcBinding(name, 1, fn1(fn))
}

func Func2(name string, fn func(a, b float64) float64) Binding {
	return funcBinding(name, 2, fn2(fn))
}

func Func3(name string, fn func(a, b, c float64) float64) Binding {
	return funcBinding(name, 3, fn3(fn))
}

func Func4(name string, fn func(a, b, c, d float64) float64) Binding {
	return funcBinding(name, 4, fn4(fn))
}

func Func5(name string, fn func(a, b, c, d, e float64) float64) Binding {
	return funcBinding(name, 5, fn5(fn))
}

func Func6(name string, fn func(a, b, c, d, e, f float64) float64) Binding {
	return funcBinding(name, 6, fn6(fn))
}

func Func7(name string, fn func(a, b, c, d, e, f, g float64) float64) Binding {
	return funcBinding(name, 7, fn7(fn))
}

func closureBinding(name string, arity int, clo cloN, ctx any) Binding {
	return Binding{symbol{name: name, kind: nodeClosure, arity: arity, clo: clo, ctx: ctx}}
}

// Closure0 binds name to a closure of no arguments. The context is an
// opaque host reference passed to fn at every evaluation; the library never
// copies or inspects it, and the host must keep it alive for as long as
// any expression compiled against the binding.
func Closure0(name string, fn func(ctx any) float64, ctx any) Binding {
	return closureBinding(name, 0, clo0(fn), ctx)
}

func Closure1(name string, fn func(ctx any, a float64) float64, ctx any) Binding {
	return closureBinding(name, 1, clo1(fn), ctx)
}

func Closure2(name string, fn func(ctx any, a, b float64) float64, ctx any) Binding {
	return closureBinding(name, 2, clo2(fn), ctx)
}

func Closure3(name string, fn func(ctx any, a, b, c float64) float64, ctx any) Binding {
	return closureBinding(name, 3, clo3(fn), ctx)
}

func Closure4(name string, fn func(ctx any, a, b, c, d float64) float64, ctx any) Binding {
	return closureBinding(name, 4, clo4(fn), ctx)
}

func Closure5(name string, fn func(ctx any, a, b, c, d, e float64) float64, ctx any) Binding {
	return closureBinding(name, 5, clo5(fn), ctx)
}

func Closure6(name string, fn func(ctx any, a, b, c, d, e, f float64) float64, ctx any) Binding {
	return closureBinding(name, 6, clo6(fn), ctx)
}

func Closure7(name string, fn func(ctx any, a, b, c, d, e, f, g float64) float64, ctx any) Binding {
	return closureBinding(name, 7, clo7(fn), ctx)
}
