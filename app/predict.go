package app

import (
	"log"

	"flag"
	"github.com/gonuts/commander"

	"github.com/gcelano/ST2022/cognate"
	"github.com/gcelano/ST2022/reflex"
)

// PredictCmd builds the predict command.
func PredictCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       predict,
		UsageLine: "predict <file options> [arguments]",
		Short:     "fill in cognate cells marked with ?",
		Long: `
fill in cognate cells marked with ?

	$ ./st2022 predict -train <training file> [options]

The output table holds only the predicted cells.

`,
		Flag: *flag.NewFlagSet("predict", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&trainFile, "train", "", "Training cognate table (TSV) with ? cells to fill")
	cmd.Flag.StringVar(&outFile, "out", "", "Output table (default: input with -out suffix)")
	cmd.Flag.IntVar(&threshold, "threshold", 1, "Minimum matching positions for pattern compatibility")
	cmd.Flag.IntVar(&maxCliques, "cliques", 0, "Clique enumeration budget per language; 0 = unbounded")
	cmd.Flag.StringVar(&alignMethod, "align", "progressive", "Alignment method: progressive or rightpad")
	return cmd
}

func predict(cmd *commander.Command, args []string) error {
	if err := requireFlags(cmd, "train"); err != nil {
		return err
	}
	method, err := parseMethod(alignMethod)
	if err != nil {
		return err
	}
	out := outFile
	if out == "" {
		out = defaultOut(trainFile)
	}

	log.Println("Configuration")
	log.Printf("Training file:\t%s", trainFile)
	log.Printf("Output file:\t%s", out)
	log.Printf("Threshold:\t%d", threshold)
	log.Printf("Alignment:\t%s", method)

	table, err := cognate.ReadFile(trainFile)
	if err != nil {
		return err
	}
	ids, _ := table.ToPredict()
	log.Printf("Read %d cognate sets over %d languages, %d cells to predict",
		table.Len(), len(table.Languages), len(ids))

	p := reflex.New(table,
		reflex.WithThreshold(threshold),
		reflex.WithMaxCliques(maxCliques),
		reflex.WithMethod(method),
	)
	if err := p.Fit(); err != nil {
		return err
	}
	log.Println("Fitted models for all languages")

	predicted, err := p.PredictMarked()
	if err != nil {
		return err
	}
	if err := predicted.WriteFile(out); err != nil {
		return err
	}
	log.Printf("Wrote %d predicted sets to %s", predicted.Len(), out)
	return nil
}
