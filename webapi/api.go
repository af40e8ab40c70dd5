package webapi

import (
	"errors"
	"log"
	"net/http"
	"os"

	"flag"
	"github.com/gonuts/commander"

	"github.com/gcelano/ST2022/cognate"
	"github.com/gcelano/ST2022/reflex"
)

var errTrainRequired = errors.New("webapi: required flag -train not set")

var (
	trainFile  string
	addr       string
	threshold  int
	maxCliques int
)

// APICmd builds the api command.
func APICmd() *commander.Command {
	cmd := &commander.Command{
		Run:       api,
		UsageLine: "api <file options> [arguments]",
		Short:     "serve reflex prediction over HTTP",
		Long: `
serve reflex prediction over HTTP

	$ ./st2022 api -train <training file> [options]

Endpoints:

	GET  /api/languages
	GET  /api/cognates/{id}
	GET  /api/cognates/{id}/{language}
	POST /api/predict

`,
		Flag: *flag.NewFlagSet("api", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&trainFile, "train", "", "Training cognate table (TSV)")
	cmd.Flag.StringVar(&addr, "addr", ":8000", "Listen address")
	cmd.Flag.IntVar(&threshold, "threshold", 1, "Minimum matching positions for pattern compatibility")
	cmd.Flag.IntVar(&maxCliques, "cliques", 0, "Clique enumeration budget per language; 0 = unbounded")
	return cmd
}

func api(cmd *commander.Command, args []string) error {
	if trainFile == "" {
		cmd.Usage()
		return errTrainRequired
	}

	table, err := cognate.ReadFile(trainFile)
	if err != nil {
		return err
	}
	log.Printf("Read %d cognate sets over %d languages from %s",
		table.Len(), len(table.Languages), trainFile)

	predictor := reflex.New(table,
		reflex.WithThreshold(threshold),
		reflex.WithMaxCliques(maxCliques),
	)
	log.Println("Fitting models")
	if err := predictor.Fit(); err != nil {
		return err
	}
	log.Println("Models fitted, listening on", addr)

	srv := NewServer(table, predictor)
	return http.ListenAndServe(addr, srv.Router())
}

// AllCommands aggregates the api command for dispatch from main.
func AllCommands() *commander.Command {
	return &commander.Command{
		UsageLine: os.Args[0] + " api",
		Short:     "invoke reflex prediction as an api server",
		Subcommands: []*commander.Command{
			APICmd(),
		},
	}
}
