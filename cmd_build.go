package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"cleric/ast"
	"cleric/tac"
)

// buildCmd runs the full pipeline and shells out to the host's C compiler
// to assemble and link the generated text into an executable, playing the
// role spec.md assigns to the external preprocessor/assembler/linker.
type buildCmd struct {
	output     string
	dumpTokens bool
	dumpAST    bool
	dumpTAC    bool
	dumpAsm    bool
}

func (*buildCmd) Name() string { return "build" }
func (*buildCmd) Synopsis() string {
	return "Compile a source file to an executable"
}
func (*buildCmd) Usage() string {
	return `build <file>:
  Run the full pipeline and assemble/link the result with cc.
`
}

func (cmd *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.output, "o", "", "output executable path (default: input file without extension)")
	f.BoolVar(&cmd.dumpTokens, "dump-tokens", false, "also print the token stream")
	f.BoolVar(&cmd.dumpAST, "dump-ast", false, "also print the AST dump")
	f.BoolVar(&cmd.dumpTAC, "dump-tac", false, "also print the TAC dump")
	f.BoolVar(&cmd.dumpAsm, "dump-asm", false, "also print the generated assembly")
}

func (cmd *buildCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, source, ok := readSourceFile(f.Args())
	if !ok {
		return subcommands.ExitUsageError
	}
	debugf("building %s", name)

	if cmd.dumpTokens {
		toks, err := runLex(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Print(dumpTokens(toks))
	}

	prog, err := runValidate(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if cmd.dumpAST {
		fmt.Print(ast.Dump(prog))
	}

	lowered := tac.Lower(prog)
	if cmd.dumpTAC {
		fmt.Print(tac.Dump(lowered))
	}

	asm, err := runCodegen(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if cmd.dumpAsm {
		fmt.Print(asm)
	}

	output := cmd.output
	if output == "" {
		output = strings.TrimSuffix(name, filepath.Ext(name))
	}

	if err := assembleAndLink(asm, output); err != nil {
		fmt.Fprintf(os.Stderr, "💥 driver error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// assembleAndLink writes asm to a temporary file and hands it to cc, which
// runs the assembler and linker to produce output.
func assembleAndLink(asm, output string) error {
	tmp, err := os.CreateTemp("", "cleric-*.s")
	if err != nil {
		return fmt.Errorf("failed to create temp assembly file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(asm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write assembly: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close assembly file: %w", err)
	}

	cmd := exec.Command("cc", tmp.Name(), "-o", output)
	cmd.Stderr = os.Stderr
	debugf("invoking %s", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cc failed: %w", err)
	}
	return nil
}
