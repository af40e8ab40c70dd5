package app

import (
	"fmt"
	"log"
	"path/filepath"

	"flag"
	"github.com/gonuts/commander"

	"github.com/gcelano/ST2022/cognate"
)

// SplitCmd builds the split command.
func SplitCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       split,
		UsageLine: "split <file options> [arguments]",
		Short:     "carve held-out evaluation samples out of a cognate table",
		Long: `
carve held-out evaluation samples out of a cognate table

	$ ./st2022 split -train <training file> [options]

For every proportion p the command writes training-<p>.tsv with p of each
language's cells replaced by ? and solutions-<p>.tsv holding the removed
forms.

`,
		Flag: *flag.NewFlagSet("split", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&trainFile, "train", "", "Cognate table (TSV) to split")
	cmd.Flag.StringVar(&outDir, "outdir", ".", "Directory for the split files")
	cmd.Flag.StringVar(&props, "props", "0.1,0.2,0.3,0.4,0.5", "Comma-separated split proportions")
	cmd.Flag.Int64Var(&seed, "seed", 1, "Random seed for sampling")
	return cmd
}

func split(cmd *commander.Command, args []string) error {
	if err := requireFlags(cmd, "train"); err != nil {
		return err
	}
	proportions, err := parseProps(props)
	if err != nil {
		return err
	}

	table, err := cognate.ReadFile(trainFile)
	if err != nil {
		return err
	}
	log.Printf("Read %d cognate sets over %d languages from %s",
		table.Len(), len(table.Languages), trainFile)

	for _, p := range proportions {
		training, solutions, err := table.Split(p, seed)
		if err != nil {
			return err
		}
		trainOut := filepath.Join(outDir, fmt.Sprintf("training-%.2f.tsv", p))
		solOut := filepath.Join(outDir, fmt.Sprintf("solutions-%.2f.tsv", p))
		if err := training.WriteFile(trainOut); err != nil {
			return err
		}
		if err := solutions.WriteFile(solOut); err != nil {
			return err
		}
		log.Printf("Proportion %.2f: wrote %s and %s (%d held-out sets)",
			p, trainOut, solOut, solutions.Len())
	}
	return nil
}
