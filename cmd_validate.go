package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type validateCmd struct{}

func (*validateCmd) Name() string { return "validate" }
func (*validateCmd) Synopsis() string {
	return "Lex, parse, and validate a source file; exit status only"
}
func (*validateCmd) Usage() string {
	return `validate <file>:
  Run the lexer, parser, and semantic validator. Prints nothing on success.
`
}
func (*validateCmd) SetFlags(f *flag.FlagSet) {}

func (c *validateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, source, ok := readSourceFile(f.Args())
	if !ok {
		return subcommands.ExitUsageError
	}
	debugf("validating %s", name)

	if _, err := runValidate(source); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
