// Package main provides the CLI entry point for the academic achievement summarizer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/aggregate"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/output"
)

var (
	// Global flags
	configPath string
	quarter    string
	workers    int
	verbose    bool

	// Command flags
	asJSON     bool
	pretty     bool
	outputPath string
	faculty    []string

	logger *zap.Logger
)

func main() {
	settings := config.LoadSettings()

	rootCmd := &cobra.Command{
		Use:   "aaasummarizer",
		Short: "Summarize academic achievement survey exports",
		Long: `aaasummarizer parses REDCap academic achievement exports (CSV or XLSX),
merges each faculty member's quarterly submissions and computes point totals.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", settings.ConfigPath, "Category/instrument YAML (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&quarter, "quarter", settings.Quarter, "Quarter label for every row (default: read from the export)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", settings.Workers, "Goroutines used to parse rows")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", settings.Verbose, "Enable debug logging")

	listFacultyCmd := &cobra.Command{
		Use:   "list-faculty [export]",
		Short: "List faculty members with quarters, points and status",
		Args:  cobra.ExactArgs(1),
		RunE:  runListFaculty,
	}
	listFacultyCmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	listActivitiesCmd := &cobra.Command{
		Use:   "list-activities [export]",
		Short: "List activity types that have entries",
		Args:  cobra.ExactArgs(1),
		RunE:  runListActivities,
	}
	listActivitiesCmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	pointsCmd := &cobra.Command{
		Use:   "points [export]",
		Short: "Export the points summary sorted by surname (.csv or .xlsx)",
		Args:  cobra.ExactArgs(1),
		RunE:  runPoints,
	}
	pointsCmd.Flags().StringVarP(&outputPath, "output", "o", "points_summary.csv", "Output file (.csv or .xlsx)")
	pointsCmd.Flags().StringSliceVarP(&faculty, "faculty", "f", nil, "Faculty email or name to include (default: all)")

	parseCmd := &cobra.Command{
		Use:   "parse [export]",
		Short: "Print the aggregated dataset as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(listFacultyCmd, listActivitiesCmd, pointsCmd, parseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDataset summarizes an export and reports malformed rows on stderr.
func loadDataset(cmd *cobra.Command, path string) (*summarizer.Dataset, error) {
	cfg, err := config.Settings{ConfigPath: configPath}.Resolve()
	if err != nil {
		return nil, err
	}

	opts := summarizer.DefaultOptions()
	opts.Config = cfg
	opts.Quarter = quarter
	opts.Workers = workers
	opts.Logger = logger

	ds, err := summarizer.Summarize(path, opts)
	if err != nil {
		if summarizer.IsConfigurationError(err) {
			logger.Error("configuration error", zap.String("input", path), zap.Error(err))
		}
		return nil, err
	}

	logger.Info("summarized export",
		zap.String("run_id", ds.RunID),
		zap.String("input", path),
		zap.Int("rows", ds.Rows),
		zap.Int("faculty", len(ds.Faculty)),
		zap.Int("malformed_rows", len(ds.RowErrors)))

	if len(ds.RowErrors) > 0 {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintf(stderr, "%d malformed row(s) skipped:\n", len(ds.RowErrors))
		for _, rowErr := range ds.RowErrors {
			logger.Warn("malformed row", zap.Int("row", rowErr.Row), zap.Error(rowErr))
			fmt.Fprintf(stderr, "  row %d: %v\n", rowErr.Row, rowErr.Err)
		}
	}
	return ds, nil
}

func runListFaculty(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd, args[0])
	if err != nil {
		return err
	}
	rows := ds.Summaries()
	out := cmd.OutOrStdout()

	if asJSON {
		data, err := output.ToJSON(output.FacultyList(rows), true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, "Faculty Members:")
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for i, row := range rows {
		status := ""
		if row.Status == models.StatusIncomplete {
			status = " [INCOMPLETE]"
		}
		fmt.Fprintf(out, "%d. %s (%s) - %d pts%s\n", i+1, row.Name, row.Email, row.Total, status)
		fmt.Fprintf(out, "   Quarters: %s\n", row.Quarters)
	}
	fmt.Fprintf(out, "\nTotal: %d faculty members\n", len(rows))
	return nil
}

func runListActivities(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd, args[0])
	if err != nil {
		return err
	}
	types := ds.ActivityTypes()
	out := cmd.OutOrStdout()

	if asJSON {
		data, err := output.ToJSON(types, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, "Activity Types:")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	current := ""
	for i, t := range types {
		if t.Group != current {
			current = t.Group
			fmt.Fprintf(out, "\n%s:\n", current)
		}
		fmt.Fprintf(out, "  %d. %s (%d entries)\n", i+1, t.Name, t.Count)
	}
	fmt.Fprintf(out, "\nTotal: %d activity types with data\n", len(types))
	return nil
}

func runPoints(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd, args[0])
	if err != nil {
		return err
	}

	rows := ds.Summaries()
	if len(faculty) > 0 {
		selected, unmatched := aggregate.Select(ds.Sorted(), faculty)
		for _, sel := range unmatched {
			logger.Warn("no faculty matched selector", zap.String("selector", sel))
		}
		if len(selected) == 0 {
			return fmt.Errorf("no faculty found matching: %s", strings.Join(faculty, ", "))
		}
		rows = rows[:0]
		for _, rec := range selected {
			rows = append(rows, aggregate.SummaryOf(rec))
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".xlsx":
		err = output.WritePointsXLSX(f, rows, ds.Config())
	default:
		err = output.WritePointsCSV(f, rows, ds.Config())
	}
	if err != nil {
		return fmt.Errorf("failed to write points summary: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Points summary saved to %s (%d faculty)\n", outputPath, len(rows))
	return nil
}

// datasetView is the JSON document printed by the parse command.
type datasetView struct {
	*summarizer.Dataset
	Summary       []models.SummaryRow   `json:"summary"`
	ActivityTypes []models.ActivityType `json:"activity_types"`
	Stats         models.DatasetStats   `json:"stats"`
	RowErrors     []string              `json:"row_errors,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd, args[0])
	if err != nil {
		return err
	}
	stats, err := ds.Stats()
	if err != nil {
		return fmt.Errorf("statistics failed: %w", err)
	}

	view := datasetView{
		Dataset:       ds,
		Summary:       ds.Summaries(),
		ActivityTypes: ds.ActivityTypes(),
		Stats:         stats,
	}
	for _, rowErr := range ds.RowErrors {
		view.RowErrors = append(view.RowErrors, rowErr.Error())
	}

	jsonData, err := output.ToJSON(view, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
