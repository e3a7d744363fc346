package experiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/stratzilla/id3-decision-tree/internal/data"
	"github.com/stratzilla/id3-decision-tree/internal/evaluation"
	"github.com/stratzilla/id3-decision-tree/internal/models"
	"github.com/stratzilla/id3-decision-tree/internal/report"
)

type Runner struct {
	Config *Config
}

type Config struct {
	Experiment struct {
		Holdouts   []float64 `yaml:"holdouts"`
		Seeds      []int64   `yaml:"seeds"`
		Stratified bool      `yaml:"stratified"`
	} `yaml:"experiment"`
}

type Result struct {
	Dataset       string
	Holdout       float64
	Seed          int64
	TrainRows     int
	TestRows      int
	Decisions     int
	Leaves        int
	TrainAccuracy decimal.Decimal
	TestAccuracy  decimal.Decimal
	BuildTimeMs   int64
}

func NewRunner(configFile string) *Runner {
	config := &Config{}

	raw, err := os.ReadFile(configFile)
	if err == nil {
		yaml.Unmarshal(raw, config)
	}

	if len(config.Experiment.Holdouts) == 0 {
		config.Experiment.Holdouts = []float64{0.6, 0.7, 0.8}
	}
	if len(config.Experiment.Seeds) == 0 {
		config.Experiment.Seeds = []int64{42}
	}

	return &Runner{Config: config}
}

// RunAll trains and evaluates one tree per holdout/seed combination.
func (r *Runner) RunAll(dataFile string) ([]Result, error) {
	reader, err := data.NewCSVReader(dataFile)
	if err != nil {
		return nil, err
	}

	table, err := reader.LoadTable()
	if err != nil {
		return nil, err
	}

	validator := data.NewTableValidator()
	if err := validator.ValidateTable(table); err != nil {
		return nil, err
	}

	var results []Result
	for _, holdout := range r.Config.Experiment.Holdouts {
		for _, seed := range r.Config.Experiment.Seeds {
			result, err := r.runOne(table, dataFile, holdout, seed)
			if err != nil {
				return nil, fmt.Errorf("holdout %g seed %d: %w", holdout, seed, err)
			}
			results = append(results, result)
		}
	}

	return results, nil
}

func (r *Runner) runOne(table *data.Table, dataFile string, holdout float64, seed int64) (Result, error) {
	splitter := evaluation.NewHoldoutSplitter(holdout, seed, true)

	var train, test *data.Table
	var err error
	if r.Config.Experiment.Stratified {
		train, test, err = splitter.StratifiedSplit(table)
	} else {
		train, test, err = splitter.Split(table)
	}
	if err != nil {
		return Result{}, err
	}

	model := models.NewID3()
	start := time.Now()
	if err := model.Fit(train); err != nil {
		return Result{}, err
	}
	buildTime := time.Since(start)

	trainReport, err := evaluation.Evaluate(model, train)
	if err != nil {
		return Result{}, err
	}
	testReport, err := evaluation.Evaluate(model, test)
	if err != nil {
		return Result{}, err
	}

	count := report.CountNodes(model.Root)

	return Result{
		Dataset:       dataFile,
		Holdout:       holdout,
		Seed:          seed,
		TrainRows:     train.NumRows(),
		TestRows:      test.NumRows(),
		Decisions:     count.Decisions,
		Leaves:        count.Leaves,
		TrainAccuracy: trainReport.Accuracy,
		TestAccuracy:  testReport.Accuracy,
		BuildTimeMs:   buildTime.Milliseconds(),
	}, nil
}

func (r *Runner) ExportResults(results []Result, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{
		"Dataset", "Holdout", "Seed", "TrainRows", "TestRows",
		"Decisions", "Leaves", "TrainAccuracy", "TestAccuracy", "BuildTimeMs",
	})

	for _, result := range results {
		writer.Write([]string{
			result.Dataset,
			fmt.Sprintf("%g", result.Holdout),
			fmt.Sprintf("%d", result.Seed),
			fmt.Sprintf("%d", result.TrainRows),
			fmt.Sprintf("%d", result.TestRows),
			fmt.Sprintf("%d", result.Decisions),
			fmt.Sprintf("%d", result.Leaves),
			result.TrainAccuracy.StringFixed(1),
			result.TestAccuracy.StringFixed(1),
			fmt.Sprintf("%d", result.BuildTimeMs),
		})
	}

	return writer.Error()
}
