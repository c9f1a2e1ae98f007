// ==============================================================================================
// FILE: main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The command-line surface (spec.md §6): exactly one positional argument, a path
//          to a source file. No flags, no REPL, no WASM target — a clean re-implementation
//          narrows the teacher's three entry points (script / REPL / browser) down to the
//          one this spec actually calls for.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"rinha/interp"
	"rinha/lexer"
	"rinha/parser"
	"rinha/symtab"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: rinha <source-file>")
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run implements spec.md §6's run(name, source, out) entry point, reading
// source from the file at path.
func run(path string, out, errOut *os.File) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "cannot read %s: %v\n", path, err)
		return err
	}
	source := string(data)

	syms := symtab.New()
	l := lexer.New(source, syms)
	p := parser.New(l, syms)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintln(errOut, msg)
		}
		return fmt.Errorf("%d parse error(s)", len(errs))
	}

	it := interp.New(syms, source, out)
	_, err = it.Run(program)
	if err != nil {
		if diag, ok := err.(*interp.Diagnostic); ok {
			fmt.Fprint(errOut, diag.Render(source))
		} else {
			fmt.Fprintln(errOut, err)
		}
		return err
	}
	return nil
}
