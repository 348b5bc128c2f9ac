package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"cleric/ast"
)

type parseCmd struct{}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "Lex and parse a source file and print its AST" }
func (*parseCmd) Usage() string {
	return `parse <file>:
  Run the lexer and parser and print the resulting AST dump.
`
}
func (*parseCmd) SetFlags(f *flag.FlagSet) {}

func (c *parseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, source, ok := readSourceFile(f.Args())
	if !ok {
		return subcommands.ExitUsageError
	}
	debugf("parsing %s", name)

	prog, err := runParse(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Print(ast.Dump(prog))
	return subcommands.ExitSuccess
}
