// Package main provides the CLI entry point for rumahcsv.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"rumahcsv/pkg/housedata"
	"rumahcsv/pkg/housedata/output"
)

const (
	defaultInput  = "DATA RUMAH.xlsx"
	defaultOutput = "cleaned_house_data.csv"
)

// envDefaults overrides the built-in default paths from the environment
// (RUMAHCSV_INPUT, RUMAHCSV_OUTPUT). Positional arguments still win.
type envDefaults struct {
	Input  string `envconfig:"INPUT"`
	Output string `envconfig:"OUTPUT"`
}

var (
	sheetPath string
	verbose   bool
)

// errUsage marks argument-count failures so main can exit 2 for them.
var errUsage = errors.New("accepts no arguments or exactly two: [input.xlsx output.csv]")

func main() {
	rootCmd := &cobra.Command{
		Use:   "rumahcsv [input.xlsx output.csv]",
		Short: "Clean house-listing data from an Excel workbook into CSV",
		Long: `rumahcsv extracts house-listing rows from an xlsx workbook, validates and
normalizes them, drops malformed and duplicate rows, and writes the result
as CSV.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return errUsage
			}
			return nil
		},
		PersistentPreRun: setupLogging,
		RunE:             run,
	}

	rootCmd.PersistentFlags().StringVar(&sheetPath, "sheet", "", "Archive-internal sheet document (default: xl/worksheets/sheet1.xml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	statsCmd := &cobra.Command{
		Use:   "stats [input.xlsx]",
		Short: "Print price summary statistics for the cleaned data set",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	rootCmd.AddCommand(statsCmd)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	source, destination := defaultPaths()
	if len(args) == 2 {
		source, destination = args[0], args[1]
	}

	listings, err := housedata.Load(source, loadOptions())
	if err != nil {
		return fmt.Errorf("cleaning %s: %w", source, err)
	}
	if err := output.WriteCSV(listings, destination); err != nil {
		return err
	}

	fmt.Printf("Wrote %d cleaned rows to %s\n", len(listings), destination)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	source, _ := defaultPaths()
	if len(args) == 1 {
		source = args[0]
	}

	listings, err := housedata.Load(source, loadOptions())
	if err != nil {
		return fmt.Errorf("cleaning %s: %w", source, err)
	}
	if len(listings) == 0 {
		return output.ErrNoListings
	}

	prices := make([]float64, len(listings))
	for i, listing := range listings {
		prices[i] = float64(listing.Price)
	}

	mean, err := stats.Mean(prices)
	if err != nil {
		return err
	}
	median, err := stats.Median(prices)
	if err != nil {
		return err
	}
	min, err := stats.Min(prices)
	if err != nil {
		return err
	}
	max, err := stats.Max(prices)
	if err != nil {
		return err
	}

	fmt.Printf("listings: %d\n", len(listings))
	fmt.Printf("price mean: %.2f\n", mean)
	fmt.Printf("price median: %.2f\n", median)
	fmt.Printf("price min: %.0f\n", min)
	fmt.Printf("price max: %.0f\n", max)
	return nil
}

// defaultPaths resolves the built-in defaults, letting the environment
// override them.
func defaultPaths() (string, string) {
	source, destination := defaultInput, defaultOutput

	var env envDefaults
	if err := envconfig.Process("rumahcsv", &env); err == nil {
		if env.Input != "" {
			source = env.Input
		}
		if env.Output != "" {
			destination = env.Output
		}
	}
	return source, destination
}

func loadOptions() housedata.Options {
	opts := housedata.DefaultOptions()
	if sheetPath != "" {
		opts.Sheet = sheetPath
	}
	return opts
}
