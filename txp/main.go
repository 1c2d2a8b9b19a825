// Command txp processes payment transaction streams.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/avrile/payments/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. Complete() returns immediately unless the process
	// was invoked by a shell completion hook.
	transactionsFile := map[string]complete.Predictor{"f": predict.Files("*.csv")}
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"process": {Flags: transactionsFile},
			"check":   {Flags: transactionsFile},
			"report": {Flags: map[string]complete.Predictor{
				"f":        predict.Files("*.csv"),
				"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
			}},
			"topic": {Args: predict.Set{"readme", "format", "rules", "*"}},
		},
	}
	completion.Complete("txp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
