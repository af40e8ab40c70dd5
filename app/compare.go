package app

import (
	"os"

	"flag"
	"github.com/gonuts/commander"

	"github.com/gcelano/ST2022/cognate"
	"github.com/gcelano/ST2022/eval"
)

// CompareCmd builds the compare command.
func CompareCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       compare,
		UsageLine: "compare <file options> [arguments]",
		Short:     "score predicted forms against held-out solutions",
		Long: `
score predicted forms against held-out solutions

	$ ./st2022 compare -pred <predictions file> -solutions <solutions file>

Prints per-language mean edit distance and normalized edit distance plus
a TOTAL row.

`,
		Flag: *flag.NewFlagSet("compare", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&predFile, "pred", "", "Predicted cognate table (TSV)")
	cmd.Flag.StringVar(&solutionsFile, "solutions", "", "Solutions cognate table (TSV)")
	return cmd
}

func compare(cmd *commander.Command, args []string) error {
	if err := requireFlags(cmd, "pred", "solutions"); err != nil {
		return err
	}
	predicted, err := cognate.ReadFile(predFile)
	if err != nil {
		return err
	}
	solutions, err := cognate.ReadFile(solutionsFile)
	if err != nil {
		return err
	}
	report := eval.Compare(predicted, solutions)
	return report.Format(os.Stdout)
}
