package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/stratzilla/id3-decision-tree/internal/data"
	"github.com/stratzilla/id3-decision-tree/internal/evaluation"
	"github.com/stratzilla/id3-decision-tree/internal/experiment"
	"github.com/stratzilla/id3-decision-tree/internal/models"
	"github.com/stratzilla/id3-decision-tree/internal/persistence"
	"github.com/stratzilla/id3-decision-tree/internal/report"
)

type options struct {
	dataFile   string
	trainFile  string
	testFile   string
	holdout    float64
	seed       int64
	stratify   bool
	printTree  bool
	modelOut   string
	configFile string
	resultsOut string
}

func main() {
	var opts options

	flag.StringVar(&opts.dataFile, "data", "", "Path to a single CSV file, split via -holdout")
	flag.StringVar(&opts.trainFile, "train", "", "Path to a training CSV file (use with -test)")
	flag.StringVar(&opts.testFile, "test", "", "Path to a testing CSV file (use with -train)")
	flag.Float64Var(&opts.holdout, "holdout", 0.8, "Proportion of examples used for training, exclusive (0.0, 1.0)")
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "Random seed for the holdout split")
	flag.BoolVar(&opts.stratify, "stratify", false, "Hold out rows per target class")
	flag.BoolVar(&opts.printTree, "print", false, "Print the decision tree")
	flag.StringVar(&opts.modelOut, "model-out", "", "File to save the fitted tree bundle")
	flag.StringVar(&opts.configFile, "config", "", "Experiment configuration YAML; runs a holdout sweep")
	flag.StringVar(&opts.resultsOut, "results", "experiment_results.csv", "Output CSV for experiment results")

	flag.Parse()

	if opts.configFile != "" {
		if opts.dataFile == "" {
			log.Fatalf("experiment mode requires -data")
		}
		runExperiment(opts)
		return
	}

	singleFile := opts.dataFile != ""
	separateFiles := opts.trainFile != "" && opts.testFile != ""
	if singleFile == separateFiles {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  Single file with holdout: id3 -data examples.csv -holdout 0.8")
		fmt.Fprintln(os.Stderr, "  Separate train/test:      id3 -train train.csv -test test.csv")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	train, test := loadData(opts)

	validator := data.NewTableValidator()
	if err := validator.ValidateTrainTestSplit(train, test); err != nil {
		log.Fatalf("Data validation failed: %v", err)
	}

	model := models.NewID3()
	start := time.Now()
	if err := model.Fit(train); err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	buildTime := time.Since(start)

	trainReport, err := evaluation.Evaluate(model, train)
	if err != nil {
		log.Fatalf("Training-set evaluation failed: %v", err)
	}
	testReport, err := evaluation.Evaluate(model, test)
	if err != nil {
		log.Fatalf("Test-set evaluation failed: %v", err)
	}

	reporter := report.NewReporter(os.Stdout)
	if opts.printTree {
		reporter.PrintTree(model)
	}
	reporter.PrintStatistics(model, buildTime, trainReport, testReport)

	if opts.modelOut != "" {
		saveModel(model, opts, trainReport, testReport, buildTime, train.NumRows(), test.NumRows())
	}
}

func loadData(opts options) (*data.Table, *data.Table) {
	if opts.dataFile != "" {
		table := loadTable(opts.dataFile)
		fmt.Printf("Using holdout style training, %.0f%% training data.\n", opts.holdout*100)

		splitter := evaluation.NewHoldoutSplitter(opts.holdout, opts.seed, true)
		var train, test *data.Table
		var err error
		if opts.stratify {
			train, test, err = splitter.StratifiedSplit(table)
		} else {
			train, test, err = splitter.Split(table)
		}
		if err != nil {
			log.Fatalf("Failed to split data: %v", err)
		}
		return train, test
	}

	fmt.Println("Using separate training and testing sets.")
	return loadTable(opts.trainFile), loadTable(opts.testFile)
}

func loadTable(filename string) *data.Table {
	reader, err := data.NewCSVReader(filename)
	if err != nil {
		log.Fatalf("Failed to create CSV reader: %v", err)
	}

	table, err := reader.LoadTable()
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	fmt.Printf("%s was successfully loaded (%d rows).\n", filename, table.NumRows())
	return table
}

func saveModel(model *models.ID3, opts options, trainReport, testReport *evaluation.ClassificationReport, buildTime time.Duration, trainRows, testRows int) {
	bundle, err := persistence.NewTreeBundle(model)
	if err != nil {
		log.Fatalf("Failed to bundle model: %v", err)
	}

	dataset := opts.dataFile
	if dataset == "" {
		dataset = opts.trainFile
	}
	bundle.Metadata = persistence.BundleMetadata{
		Dataset:       dataset,
		TrainRows:     trainRows,
		TestRows:      testRows,
		TrainAccuracy: trainReport.Accuracy,
		TestAccuracy:  testReport.Accuracy,
		BuildTime:     buildTime,
	}

	if err := bundle.Save(opts.modelOut); err != nil {
		log.Fatalf("Failed to save model: %v", err)
	}
	fmt.Printf("Model saved to: %s\n", opts.modelOut)
}

func runExperiment(opts options) {
	fmt.Println("Running holdout experiment...")

	runner := experiment.NewRunner(opts.configFile)
	results, err := runner.RunAll(opts.dataFile)
	if err != nil {
		log.Fatalf("Experiment failed: %v", err)
	}

	if err := runner.ExportResults(results, opts.resultsOut); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}
	fmt.Printf("Experiment results saved to: %s\n", opts.resultsOut)

	best := results[0]
	for _, result := range results[1:] {
		if result.TestAccuracy.GreaterThan(best.TestAccuracy) {
			best = result
		}
	}
	fmt.Printf("Best test accuracy: %s%% (holdout %g, seed %d)\n",
		best.TestAccuracy.StringFixed(1), best.Holdout, best.Seed)
}
