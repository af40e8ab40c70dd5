package app

import (
	"os"

	"github.com/gonuts/commander"
)

// AllCommands aggregates the standalone commands under one parent for
// dispatch from main.
func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine: os.Args[0] + " app",
		Short:     "run reflex prediction as a standalone app",
		Subcommands: []*commander.Command{
			PredictCmd(),
			SplitCmd(),
			CompareCmd(),
			DatasetsCmd(),
		},
	}
	return cmd
}
