package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/aggregate"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/parser"
)

// Summarize reads a CSV or Excel export and aggregates it.
func Summarize(path string, opts Options) (*Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	cfg, err := opts.resolveConfig()
	if err != nil {
		return nil, err
	}
	opts.Config = cfg

	table, err := Load(path, opts.sheet(cfg))
	if err != nil {
		return nil, err
	}
	return SummarizeTable(table, opts)
}

// Load reads an export into a RawTable, choosing the reader by extension.
func Load(path, sheet string) (*models.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var table *models.RawTable
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		table, err = parser.ReadCSV(f)
	case ".xlsx":
		table, err = parser.ReadXLSX(f, sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	table.Source = filepath.Base(path)
	return table, nil
}

// SummarizeTable parses and aggregates an already loaded table.
//
// Malformed rows are collected in Dataset.RowErrors and skipped. A
// configuration error aborts the pass and no Dataset is returned.
func SummarizeTable(table *models.RawTable, opts Options) (*Dataset, error) {
	cfg, err := opts.resolveConfig()
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		RunID:  uuid.NewString(),
		Source: table.Source,
		Rows:   len(table.Rows),
		cfg:    cfg,
	}
	log := opts.logger().With(zap.String("run_id", ds.RunID), zap.String("source", table.Source))

	index := parser.BuildColumnIndex(table.Headers)
	p := parser.NewSubmissionParser(cfg, index, opts.Quarter)

	results, err := parseRows(p, table, opts)
	if err != nil {
		return nil, err
	}

	agg := aggregate.NewAggregator(cfg)
	for _, r := range results {
		if r.err != nil {
			log.Debug("skipping malformed row", zap.Int("row", r.err.Row), zap.Error(r.err))
			ds.RowErrors = append(ds.RowErrors, r.err)
			continue
		}
		log.Debug("parsed row",
			zap.Int("row", r.sub.Row),
			zap.String("identity", r.sub.Identity),
			zap.String("quarter", r.sub.Quarter),
			zap.Int("activities", len(r.sub.Activities)))
		agg.Add(r.sub)
		ds.Submissions = append(ds.Submissions, r.sub)
	}
	ds.Faculty = agg.Finish()

	log.Debug("aggregated",
		zap.Int("rows", ds.Rows),
		zap.Int("faculty", len(ds.Faculty)),
		zap.Int("malformed", len(ds.RowErrors)))
	return ds, nil
}

type rowResult struct {
	sub *models.QuarterSubmission
	err *MalformedRowError
}

// parseRows parses every row, concurrently when requested. Results are
// returned in row order regardless of completion order.
func parseRows(p *parser.SubmissionParser, table *models.RawTable, opts Options) ([]rowResult, error) {
	results := make([]rowResult, len(table.Rows))

	parseOne := func(i int) error {
		sub, err := p.ParseRow(table.Rows[i], table.FileRow(i))
		if err != nil {
			var malformed *MalformedRowError
			if errors.As(err, &malformed) {
				results[i].err = malformed
				return nil
			}
			return err
		}
		results[i].sub = sub
		return nil
	}

	if !opts.ShouldParallelize() {
		for i := range table.Rows {
			if err := parseOne(i); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(opts.Workers)
	for i := range table.Rows {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			return parseOne(i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
