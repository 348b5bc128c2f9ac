package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"cleric/ast"
	"cleric/tac"
)

// replCmd accumulates lines until braces balance, the way the teacher's
// cmd_repl_compiled.go waits for a complete chunk before running its
// pipeline, then runs the requested stage and prints its dump.
type replCmd struct {
	stage string
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Interactively compile programs through a chosen stage" }
func (*replCmd) Usage() string {
	return `repl [-stage lex|parse|validate|tac|codegen]:
  Read whole programs, one per chunk, and print the chosen stage's dump.
`
}

func (cmd *replCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.stage, "stage", "codegen", "pipeline stage to stop at: lex, parse, validate, tac, codegen")
}

func (cmd *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to start REPL: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	fmt.Fprintln(os.Stdout, "cleric REPL — submit a full function definition; it compiles once its braces balance.")

	var buffer strings.Builder
	for {
		prompt := ">>> "
		if buffer.Len() > 0 {
			prompt = "... "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return subcommands.ExitFailure
		}

		if strings.TrimSpace(line) == "exit" && buffer.Len() == 0 {
			return subcommands.ExitSuccess
		}

		if buffer.Len() > 0 {
			buffer.WriteByte('\n')
		}
		buffer.WriteString(line)

		if !bracesBalanced(buffer.String()) {
			continue
		}

		source := buffer.String()
		buffer.Reset()
		cmd.runStage(source)
	}
}

func (cmd *replCmd) runStage(source string) {
	switch cmd.stage {
	case "lex":
		toks, err := runLex(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Print(dumpTokens(toks))
	case "parse":
		prog, err := runParse(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Print(ast.Dump(prog))
	case "validate":
		if _, err := runValidate(source); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println("ok")
	case "tac":
		lowered, err := runLower(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Print(tac.Dump(lowered))
	default:
		asm, err := runCodegen(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Print(asm)
	}
}

// bracesBalanced reports whether source forms a complete chunk: at least
// one '{' has been opened and every one has since been closed. Scanning
// raw bytes rather than requiring a clean token stream tolerates a
// still-incomplete submission that would fail to lex on its own (e.g. a
// dangling operator at the end of a line the user hasn't finished typing).
func bracesBalanced(source string) bool {
	depth := 0
	sawBrace := false
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '{':
			depth++
			sawBrace = true
		case '}':
			depth--
		}
	}
	return sawBrace && depth <= 0
}
