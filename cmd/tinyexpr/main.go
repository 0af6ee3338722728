package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/GerHobbelt/tinyexpr"
	"github.com/GerHobbelt/tinyexpr/internal/history"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb       string
		diffName, histPath string
		echo               bool
		powLeft, natLog    bool
	)
	vars := map[string]*float64{}
	addGiven := func(s string) error {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return err
		}
		p := new(float64)
		*p = v
		vars[strings.TrimSpace(name)] = p
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addGiven)
	flag.StringVar(&diffName, "diff", "", "also print the derivative with respect to this variable")
	flag.StringVar(&histPath, "hist", "", "record evaluations in a SQLite history at this path")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&powLeft, "powleft", false, "make ** left-associative")
	flag.BoolVar(&natLog, "natlog", false, "resolve log as the natural logarithm")
	flag.Parse()

	var opts []tinyexpr.Option
	if powLeft {
		opts = append(opts, tinyexpr.PowFromLeft())
	}
	if natLog {
		opts = append(opts, tinyexpr.NaturalLog())
	}

	bindings := make([]tinyexpr.Binding, 0, len(vars))
	for name, addr := range vars {
		bindings = append(bindings, tinyexpr.Var(name, addr))
	}
	if diffName != "" && vars[diffName] == nil {
		log.Fatalf("-diff %s: variable not defined with -given", diffName)
	}

	var hist *history.Store
	if histPath != "" {
		h, err := history.Open(histPath)
		if err != nil {
			log.Fatal(err)
		}
		defer h.Close()
		hist = h
	}

	run := func(src string) {
		e, err := tinyexpr.Compile(src, bindings, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		defer e.Free()
		if echo {
			e.Print()
		}
		r := e.Eval()
		fmt.Printf(verb+"\n", r)
		if hist != nil {
			if err := hist.Append(src, r); err != nil {
				fmt.Fprintln(os.Stderr, "history:", err)
			}
		}
		if diffName != "" {
			d, err := tinyexpr.Differentiate(e, tinyexpr.Var(diffName, vars[diffName]))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			defer d.Free()
			fmt.Printf("d/d%s = "+verb+"\n", diffName, d.Eval())
		}
	}

	if flag.NArg() > 0 {
		for _, src := range flag.Args() {
			run(src)
		}
		return
	}

	in := os.Stdin
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	prompt := in == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))

	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Print("> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		run(line)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	if prompt {
		fmt.Println()
	}
}
