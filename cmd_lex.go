package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type lexCmd struct{}

func (*lexCmd) Name() string     { return "lex" }
func (*lexCmd) Synopsis() string { return "Scan a source file and print its tokens" }
func (*lexCmd) Usage() string {
	return `lex <file>:
  Run the lexer and print one token per line.
`
}
func (*lexCmd) SetFlags(f *flag.FlagSet) {}

func (c *lexCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, source, ok := readSourceFile(f.Args())
	if !ok {
		return subcommands.ExitUsageError
	}
	debugf("lexing %s", name)

	toks, err := runLex(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Print(dumpTokens(toks))
	return subcommands.ExitSuccess
}
