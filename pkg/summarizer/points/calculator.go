// Package points computes activity point values from the category configuration.
package points

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
)

// Entry is the input to a point calculation.
type Entry struct {
	// Category is the dotted category key.
	Category string
	// Fields holds the activity's descriptive fields.
	Fields map[string]string
	// Reported is the platform-computed points cell for the entry's slot, if any.
	Reported string
}

// Calculator scores activities against a read-only configuration.
type Calculator struct {
	cfg *config.Config
}

// NewCalculator creates a Calculator for cfg.
func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Calculate returns the non-negative point value of an entry. A category
// missing from the configuration, or a type value without a rate, is a
// *config.ConfigurationError; it is never scored as zero.
func (c *Calculator) Calculate(e Entry) (int, error) {
	cat, err := c.cfg.Category(e.Category)
	if err != nil {
		return 0, err
	}
	return Score(cat, e)
}

// Score applies a category's rule to an entry.
func Score(cat *config.Category, e Entry) (int, error) {
	var points int
	switch cat.Kind {
	case config.RuleFixed:
		points = cat.Points
	case config.RuleByType:
		rate, err := rateFor(cat, e.Fields)
		if err != nil {
			return 0, err
		}
		points = rate
	case config.RuleCount:
		base, err := baseFor(cat, e.Fields)
		if err != nil {
			return 0, err
		}
		count := parseCount(e.Fields[cat.CountField])
		if cat.MaxCount > 0 && count > cat.MaxCount {
			count = cat.MaxCount
		}
		points = mulSaturating(base, count)
	case config.RuleImpactFactor:
		base, err := baseFor(cat, e.Fields)
		if err != nil {
			return 0, err
		}
		factor := parseFactor(e.Fields[cat.FactorField])
		if cat.MaxFactor > 0 && factor > cat.MaxFactor {
			factor = cat.MaxFactor
		}
		points = truncate(float64(base) * factor)
	case config.RuleReported:
		points = parseReported(e.Reported)
	default:
		return 0, config.NewConfigurationError(cat.Key, "scoring", fmt.Errorf("unknown rule kind %q", cat.Kind))
	}

	if cat.MaxPoints > 0 && points > cat.MaxPoints {
		points = cat.MaxPoints
	}
	if points < 0 {
		points = 0
	}
	return points, nil
}

func rateFor(cat *config.Category, fields map[string]string) (int, error) {
	value := strings.TrimSpace(fields[cat.TypeField])
	rate, ok := cat.Rates[value]
	if !ok {
		return 0, config.NewConfigurationError(cat.Key, fmt.Sprintf("type %q", value), config.ErrUnratedType)
	}
	return rate, nil
}

// baseFor returns the per-unit base: the type's rate when the rule has rates,
// Points otherwise.
func baseFor(cat *config.Category, fields map[string]string) (int, error) {
	if len(cat.Rates) == 0 {
		return cat.Points, nil
	}
	return rateFor(cat, fields)
}

// parseCount parses a counted field. Blank counts as one entry; unparseable
// or negative values count as zero.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1
	}
	if n, err := strconv.Atoi(s); err == nil {
		return min(max(n, 0), maxCount)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int(min(f, maxCount))
	}
	return 0
}

// parseFactor parses an impact factor. Blank or unparseable values count as 1.
func parseFactor(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}
	return max(f, 0)
}

// parseReported parses a platform-computed points cell, truncating decimals.
func parseReported(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || f < 0 {
		return 0
	}
	return truncate(f)
}

// maxCount bounds parsed counts so that float conversion stays defined.
const maxCount = math.MaxInt32

// mulSaturating multiplies non-negative a and b, returning math.MaxInt on
// overflow.
func mulSaturating(a, b int) int {
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// truncate converts a non-negative float to int, saturating at math.MaxInt.
func truncate(f float64) int {
	if f >= math.MaxInt {
		return math.MaxInt
	}
	return int(f)
}
