package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type codegenCmd struct{}

func (*codegenCmd) Name() string { return "codegen" }
func (*codegenCmd) Synopsis() string {
	return "Run the full pipeline through assembly and print the result"
}
func (*codegenCmd) Usage() string {
	return `codegen <file>:
  Run the lexer, parser, validator, TAC lowering, and code generator;
  print the x86-64 assembly text for the host OS.
`
}
func (*codegenCmd) SetFlags(f *flag.FlagSet) {}

func (c *codegenCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, source, ok := readSourceFile(f.Args())
	if !ok {
		return subcommands.ExitUsageError
	}
	debugf("generating code for %s", name)

	asm, err := runCodegen(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Print(asm)
	return subcommands.ExitSuccess
}
