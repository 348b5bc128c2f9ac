package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

var debug = flag.Bool("debug", false, "log per-stage progress to stderr")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&lexCmd{}, "")
	subcommands.Register(&parseCmd{}, "")
	subcommands.Register(&validateCmd{}, "")
	subcommands.Register(&tacCmd{}, "")
	subcommands.Register(&tackyCmd{}, "")
	subcommands.Register(&codegenCmd{}, "")
	subcommands.Register(&buildCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

func debugf(format string, args ...any) {
	if *debug {
		log.Printf(format, args...)
	}
}

func readSourceFile(args []string) (string, string, bool) {
	if len(args) < 1 {
		return "", "", false
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Printf("💥 failed to read %s: %v", args[0], err)
		return "", "", false
	}
	return args[0], string(data), true
}
