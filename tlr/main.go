package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/teller/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, installed with COMP_INSTALL=1 tlr.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"accounts-file":     predict.Files("*.txt"),
			"transactions-file": predict.Files("*.txt"),
		},
		Sub: map[string]*complete.Command{
			"create":   {},
			"accounts": {},
			"summary":  {},
			"passwd":   {},
			"delete":   {},
			"deposit":  {},
			"withdraw": {},
			"transfer": {},
			"history":  {},
			"ui":       {},
			"fmt":      {},
			"import":   {Flags: map[string]complete.Predictor{"f": predict.Files("*.json")}},
			"topic":    {},
			"assist":   {},
		},
	}
	completion.Complete("tlr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
