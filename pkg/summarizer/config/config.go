// Package config defines the point categories and survey instrument layout
// consumed by the summarizer engine.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// RuleKind selects how an activity's points are computed.
type RuleKind string

const (
	// RuleFixed awards Points per entry.
	RuleFixed RuleKind = "fixed"
	// RuleByType awards Rates[type value] per entry.
	RuleByType RuleKind = "by_type"
	// RuleCount awards base points times a counted field.
	RuleCount RuleKind = "count"
	// RuleImpactFactor awards base points times a capped journal impact factor.
	RuleImpactFactor RuleKind = "impact_factor"
	// RuleReported uses the points the survey platform computed for the slot.
	RuleReported RuleKind = "reported"
)

// Rule is the point-computation rule of a category.
type Rule struct {
	Kind RuleKind `yaml:"kind"`
	// Points is the per-entry value for fixed rules and the base for count and
	// impact_factor rules without Rates.
	Points int `yaml:"points"`
	// Rates maps type values to per-entry points (or bases).
	Rates map[string]int `yaml:"rates"`
	// TypeField is the descriptive field whose value keys Rates. Default "type".
	TypeField string `yaml:"type_field"`
	// CountField is the field holding the count for count rules. Default "count".
	CountField string `yaml:"count_field"`
	// MaxCount caps the count when > 0.
	MaxCount int `yaml:"max_count"`
	// FactorField is the field holding the impact factor. Default "impact_factor".
	FactorField string `yaml:"factor_field"`
	// MaxFactor caps the impact factor when > 0.
	MaxFactor float64 `yaml:"max_factor"`
	// MaxPoints caps the computed points when > 0.
	MaxPoints int `yaml:"max_points"`
}

// Category is one CategoryConfig entry.
type Category struct {
	// Key is the dotted category key; filled in from the map key on load.
	Key string `yaml:"-"`
	// Name is the display name.
	Name string `yaml:"name"`
	// Group is the parent group key. Defaults to the key's prefix.
	Group string `yaml:"group"`
	Rule  `yaml:",inline"`
}

// Group is a top-level category group.
type Group struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// FieldSpec maps one column of a repeating group to a descriptive field key.
type FieldSpec struct {
	Key    string `yaml:"key"`
	Column string `yaml:"column"`
	// First is the occurrence of Column that holds slot 1 of the group.
	First int `yaml:"first"`
}

// PointsColumn locates the platform-computed points column of a group.
// Column is a format with one %d verb for the 1-based slot number.
type PointsColumn struct {
	Column     string `yaml:"column"`
	Occurrence int    `yaml:"occurrence"`
}

// GroupLayout describes one repeating field group of the instrument.
type GroupLayout struct {
	Category   string        `yaml:"category"`
	MaxEntries int           `yaml:"max_entries"`
	Fields     []FieldSpec   `yaml:"fields"`
	Points     *PointsColumn `yaml:"points"`
	// TypeField is the field compared against Skip. Default "type".
	TypeField string `yaml:"type_field"`
	// Skip lists type values meaning the respondent reported no activity.
	Skip []string `yaml:"skip"`
}

// Instrument describes where the parser finds identity, status and activity
// data in an export.
type Instrument struct {
	RecordIDColumn  string        `yaml:"record_id_column"`
	FirstNameColumn string        `yaml:"first_name_column"`
	LastNameColumn  string        `yaml:"last_name_column"`
	EmailColumn     string        `yaml:"email_column"`
	QuarterColumn   string        `yaml:"quarter_column"`
	StatusColumn    string        `yaml:"status_column"`
	CompleteToken   string        `yaml:"complete_token"`
	Sheet           string        `yaml:"sheet"`
	Groups          []GroupLayout `yaml:"groups"`
}

// Config is the CategoryConfig plus the instrument layout. It is loaded once
// per run and must not be modified afterwards.
type Config struct {
	Groups     []Group              `yaml:"groups"`
	Categories map[string]*Category `yaml:"categories"`
	Instrument Instrument           `yaml:"instrument"`
}

// Default returns the built-in configuration for the department's survey.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes, normalizes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.Categories == nil {
		c.Categories = map[string]*Category{}
	}
	for key, cat := range c.Categories {
		if cat == nil {
			cat = &Category{}
			c.Categories[key] = cat
		}
		cat.Key = key
		if cat.Group == "" {
			cat.Group, _, _ = strings.Cut(key, ".")
		}
		if cat.Name == "" {
			cat.Name = key
		}
		if cat.TypeField == "" {
			cat.TypeField = "type"
		}
		if cat.CountField == "" {
			cat.CountField = "count"
		}
		if cat.FactorField == "" {
			cat.FactorField = "impact_factor"
		}
	}
	if c.Instrument.CompleteToken == "" {
		c.Instrument.CompleteToken = "Complete"
	}
	for i := range c.Instrument.Groups {
		if c.Instrument.Groups[i].TypeField == "" {
			c.Instrument.Groups[i].TypeField = "type"
		}
	}
}

// Validate checks that every rule and group layout is well formed. It does not
// require every instrument group to have a category; a missing category is
// reported when data for it is scored.
func (c *Config) Validate() error {
	var errs []error
	for _, key := range c.CategoryKeys() {
		if err := c.Categories[key].validate(); err != nil {
			errs = append(errs, fmt.Errorf("category %q: %w", key, err))
		}
	}

	in := c.Instrument
	if in.EmailColumn == "" && in.FirstNameColumn == "" && in.LastNameColumn == "" {
		errs = append(errs, errors.New("instrument: no identity column configured"))
	}
	seen := make(map[string]bool)
	for i, g := range in.Groups {
		if err := g.validate(); err != nil {
			errs = append(errs, fmt.Errorf("instrument group %d (%s): %w", i+1, g.Category, err))
		}
		if seen[g.Category] {
			errs = append(errs, fmt.Errorf("instrument group %d: duplicate category %q", i+1, g.Category))
		}
		seen[g.Category] = true
	}
	return errors.Join(errs...)
}

func (cat *Category) validate() error {
	switch cat.Kind {
	case RuleFixed, RuleReported:
	case RuleByType:
		if len(cat.Rates) == 0 {
			return errors.New("by_type rule without rates")
		}
	case RuleCount, RuleImpactFactor:
		if cat.MaxFactor < 0 || cat.MaxCount < 0 {
			return errors.New("negative cap")
		}
	case "":
		return errors.New("missing rule kind")
	default:
		return fmt.Errorf("unknown rule kind %q", cat.Kind)
	}
	if cat.Points < 0 || cat.MaxPoints < 0 {
		return errors.New("negative points")
	}
	for label, v := range cat.Rates {
		if v < 0 {
			return fmt.Errorf("negative rate for %q", label)
		}
	}
	return nil
}

func (g GroupLayout) validate() error {
	if g.Category == "" {
		return errors.New("missing category")
	}
	if g.MaxEntries < 1 {
		return fmt.Errorf("max_entries must be positive, got %d", g.MaxEntries)
	}
	if len(g.Fields) == 0 {
		return errors.New("no fields")
	}
	keys := make(map[string]bool, len(g.Fields))
	for _, f := range g.Fields {
		if f.Key == "" || f.Column == "" {
			return errors.New("field needs key and column")
		}
		if f.First < 0 {
			return fmt.Errorf("field %q: negative first occurrence", f.Key)
		}
		if keys[f.Key] {
			return fmt.Errorf("duplicate field key %q", f.Key)
		}
		keys[f.Key] = true
	}
	if g.Points != nil {
		if !strings.Contains(g.Points.Column, "%d") {
			return fmt.Errorf("points column %q has no %%d verb", g.Points.Column)
		}
		if g.Points.Occurrence < 0 {
			return errors.New("negative points occurrence")
		}
	}
	return nil
}

// Category returns the configuration of a category key. A key absent from the
// configuration is a *ConfigurationError.
func (c *Config) Category(key string) (*Category, error) {
	cat, ok := c.Categories[key]
	if !ok {
		return nil, NewConfigurationError(key, "category not configured", ErrUnknownCategory)
	}
	return cat, nil
}

// GroupOf returns the parent group of a category key.
func (c *Config) GroupOf(key string) string {
	if cat, ok := c.Categories[key]; ok {
		return cat.Group
	}
	group, _, _ := strings.Cut(key, ".")
	return group
}

// GroupName returns the display name of a group key.
func (c *Config) GroupName(key string) string {
	for _, g := range c.Groups {
		if g.Key == key {
			return g.Name
		}
	}
	return key
}

// CategoryName returns the display name of a category key.
func (c *Config) CategoryName(key string) string {
	if cat, ok := c.Categories[key]; ok {
		return cat.Name
	}
	return key
}

// GroupKeys returns the configured group keys in declaration order, followed
// by any group referenced only by a category, sorted.
func (c *Config) GroupKeys() []string {
	keys := make([]string, 0, len(c.Groups))
	seen := make(map[string]bool)
	for _, g := range c.Groups {
		if !seen[g.Key] {
			keys = append(keys, g.Key)
			seen[g.Key] = true
		}
	}
	var extra []string
	for _, cat := range c.Categories {
		if !seen[cat.Group] {
			extra = append(extra, cat.Group)
			seen[cat.Group] = true
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// CategoryKeys returns all category keys, sorted.
func (c *Config) CategoryKeys() []string {
	keys := make([]string, 0, len(c.Categories))
	for key := range c.Categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
