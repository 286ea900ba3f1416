package parser

import (
	"fmt"
	"strings"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/points"
)

// SubmissionParser parses rows of one export into QuarterSubmissions.
// It holds no mutable state and is safe for concurrent use.
type SubmissionParser struct {
	cfg     *config.Config
	index   *ColumnIndex
	calc    *points.Calculator
	quarter string
}

// NewSubmissionParser creates a parser for rows indexed by index. A non-empty
// quarter overrides the quarter column for every row.
func NewSubmissionParser(cfg *config.Config, index *ColumnIndex, quarter string) *SubmissionParser {
	return &SubmissionParser{
		cfg:     cfg,
		index:   index,
		calc:    points.NewCalculator(cfg),
		quarter: strings.TrimSpace(quarter),
	}
}

// ParseRow parses one row. line is the row's source line, used in errors.
//
// A row without email and name yields a *MalformedRowError. An entry that
// leaves its rated type blank is dropped. An activity whose category or
// non-blank type has no configured points yields an error wrapping a
// *config.ConfigurationError.
func (p *SubmissionParser) ParseRow(row []string, line int) (*models.QuarterSubmission, error) {
	in := p.cfg.Instrument

	recordID := p.text(row, in.RecordIDColumn)
	first := p.text(row, in.FirstNameColumn)
	last := p.text(row, in.LastNameColumn)
	email := strings.ToLower(p.text(row, in.EmailColumn))

	identity := email
	if identity == "" {
		identity = models.FullName(first, last)
	}
	if identity == "" {
		return nil, NewMalformedRowError(line, recordID, ErrMissingIdentity)
	}

	quarter := p.quarter
	if quarter == "" {
		quarter = p.text(row, in.QuarterColumn)
	}

	sub := &models.QuarterSubmission{
		Row:       line,
		RecordID:  recordID,
		Identity:  identity,
		Email:     email,
		FirstName: first,
		LastName:  last,
		Quarter:   quarter,
		Status:    p.status(row),
	}

	for _, group := range in.Groups {
		for occ := range Occurrences(row, p.index, group) {
			if skipped(group, occ) || p.untyped(group.Category, occ) {
				continue
			}
			pts, err := p.calc.Calculate(points.Entry{
				Category: group.Category,
				Fields:   occ.Fields,
				Reported: ReportedPoints(row, p.index, group, occ.Slot),
			})
			if err != nil {
				return nil, fmt.Errorf("row %d, %s #%d: %w", line, group.Category, occ.Slot, err)
			}
			sub.Activities = append(sub.Activities, models.ActivityRecord{
				Category: group.Category,
				Fields:   occ.Fields,
				Points:   pts,
				Quarter:  quarter,
				RecordID: recordID,
				Slot:     occ.Slot,
			})
		}
	}

	return sub, nil
}

// text returns the trimmed first occurrence of a column, or "".
func (p *SubmissionParser) text(row []string, column string) string {
	if column == "" {
		return ""
	}
	v, _ := p.index.Value(row, column, 0)
	return strings.TrimSpace(v)
}

// status maps the last status column to a Status. The platform emits one
// status column per instrument; the last one is the overall survey status.
// Anything other than the complete token, including a missing column, is
// incomplete.
func (p *SubmissionParser) status(row []string) models.Status {
	column := p.cfg.Instrument.StatusColumn
	if column == "" {
		return models.StatusIncomplete
	}
	v, ok := p.index.Last(row, column)
	if ok && strings.TrimSpace(v) == p.cfg.Instrument.CompleteToken {
		return models.StatusComplete
	}
	return models.StatusIncomplete
}

// untyped reports whether an occurrence lacks the type value its category's
// rates are keyed by. Such entries are treated as not reported.
func (p *SubmissionParser) untyped(category string, occ Occurrence) bool {
	cat, ok := p.cfg.Categories[category]
	if !ok || len(cat.Rates) == 0 {
		return false
	}
	switch cat.Kind {
	case config.RuleByType, config.RuleCount, config.RuleImpactFactor:
		return strings.TrimSpace(occ.Fields[cat.TypeField]) == ""
	}
	return false
}
