package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of flags taking a known set of values, by flag name.
var predictors = map[string]complete.Predictor{
	"config":     predict.Files("*.yaml"),
	"history":    predict.Files("*.jsonl"),
	"log-level":  predict.Set{"debug", "info", "warn", "error"},
	"currency":   predict.Set{"GBP", "EUR", "USD"},
	"kind":       predict.Set{"flat", "house"},
	"strategy":   predict.Set{"F", "H", "FF", "FH", "HH", "FFH"},
	"strategies": predict.Set{"FF,FH,HH", "F,H"},
}

// Completion returns the shell completion of the application, with the
// global flags and every subcommand.
func Completion(global *flag.FlagSet) *complete.Command {
	c := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	for _, g := range Commands {
		for _, cmd := range g.Commands {
			fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			cmd.SetFlags(fs)
			c.Sub[cmd.Name()] = &complete.Command{Flags: flagPredictors(fs)}
		}
	}
	return c
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch p, ok := predictors[f.Name]; {
		case ok:
			flags[f.Name] = p
		case isBoolFlag(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
