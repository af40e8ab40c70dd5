package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"flag"
	"github.com/gonuts/commander"
	"gopkg.in/yaml.v2"

	"github.com/gcelano/ST2022/cognate"
	"github.com/gcelano/ST2022/eval"
	"github.com/gcelano/ST2022/reflex"
)

// DatasetsConfig is the YAML description of a batch evaluation run.
type DatasetsConfig struct {
	// Seed is the sampling seed shared by every split.
	Seed int64 `yaml:"seed"`
	// Props lists the held-out proportions to evaluate.
	Props []float64 `yaml:"props"`
	// Threshold overrides the classifier compatibility threshold when
	// non-zero.
	Threshold int `yaml:"threshold"`
	// Datasets lists the cognate tables to run.
	Datasets []DatasetEntry `yaml:"datasets"`
}

// DatasetEntry names one cognate table of a batch run.
type DatasetEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// ReadDatasetsConfig parses a batch-run configuration file.
func ReadDatasetsConfig(path string) (*DatasetsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &DatasetsConfig{Seed: 1, Props: []float64{0.1, 0.2, 0.3, 0.4, 0.5}}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("app: parse %s: %w", path, err)
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = 1
	}
	if len(cfg.Datasets) == 0 {
		return nil, fmt.Errorf("app: %s lists no datasets", path)
	}
	return cfg, nil
}

// DatasetsCmd builds the datasets command.
func DatasetsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       datasets,
		UsageLine: "datasets <file options> [arguments]",
		Short:     "split, predict and score a batch of cognate tables",
		Long: `
split, predict and score a batch of cognate tables

	$ ./st2022 datasets -config <yaml file> [options]

For every dataset and proportion in the configuration the command splits
the table, fits on the training part, predicts the held-out cells and
prints the accuracy report.

`,
		Flag: *flag.NewFlagSet("datasets", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&datasetsFile, "config", "", "YAML batch-run configuration")
	cmd.Flag.StringVar(&outDir, "outdir", ".", "Directory for intermediate split and prediction files")
	return cmd
}

func datasets(cmd *commander.Command, args []string) error {
	if err := requireFlags(cmd, "config"); err != nil {
		return err
	}
	cfg, err := ReadDatasetsConfig(datasetsFile)
	if err != nil {
		return err
	}

	for _, ds := range cfg.Datasets {
		table, err := cognate.ReadFile(ds.Path)
		if err != nil {
			return fmt.Errorf("app: dataset %s: %w", ds.Name, err)
		}
		log.Printf("Dataset %s: %d cognate sets over %d languages",
			ds.Name, table.Len(), len(table.Languages))

		for _, p := range cfg.Props {
			training, solutions, err := table.Split(p, cfg.Seed)
			if err != nil {
				return fmt.Errorf("app: dataset %s: %w", ds.Name, err)
			}

			predictor := reflex.New(training, reflex.WithThreshold(cfg.Threshold))
			if err := predictor.Fit(); err != nil {
				return fmt.Errorf("app: dataset %s: %w", ds.Name, err)
			}
			predicted, err := predictor.ToPredict()
			if err != nil {
				return fmt.Errorf("app: dataset %s: %w", ds.Name, err)
			}

			predOut := filepath.Join(outDir, fmt.Sprintf("%s-%.2f-out.tsv", ds.Name, p))
			if err := predicted.WriteFile(predOut); err != nil {
				return err
			}

			fmt.Printf("## %s, proportion %.2f\n", ds.Name, p)
			report := eval.Compare(predicted, solutions)
			if err := report.Format(os.Stdout); err != nil {
				return err
			}
			fmt.Println()
		}
	}
	return nil
}
