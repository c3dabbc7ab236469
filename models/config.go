package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GradeTarget is the per-content-type readability target: the grade the
// copy should land on, the acceptable range around it, and an editorial
// note shown alongside reports.
type GradeTarget struct {
	Target float64 `yaml:"target" json:"target"`
	Min    float64 `yaml:"min" json:"min"`
	Max    float64 `yaml:"max" json:"max"`
	Note   string  `yaml:"note,omitempty" json:"note,omitempty"`
}

// RunOnThresholds configures the sentence-structure analyzer. The strict
// word thresholds apply only to the speech/voice checker variant.
type RunOnThresholds struct {
	MaxWords            int `yaml:"max_words" json:"max_words"`
	StrictWarnWords     int `yaml:"strict_warn_words" json:"strict_warn_words"`
	StrictCriticalWords int `yaml:"strict_critical_words" json:"strict_critical_words"`
	MaxConjunctions     int `yaml:"max_conjunctions" json:"max_conjunctions"`
	MaxClauseIndicators int `yaml:"max_clause_indicators" json:"max_clause_indicators"`
}

// Config is the full engine configuration. Everything here is versioned
// data the engine consumes, never state it owns: grade targets, the global
// tolerance, run-on thresholds, the complex-word substitution table, and
// the criteria weight tables per assignment type.
type Config struct {
	Tolerance     float64                `yaml:"tolerance" json:"tolerance"`
	Targets       map[string]GradeTarget `yaml:"targets" json:"targets"`
	RunOn         RunOnThresholds        `yaml:"run_on" json:"run_on"`
	Substitutions map[string]string      `yaml:"substitutions" json:"substitutions"`
	Criteria      map[string]CriteriaSet `yaml:"criteria" json:"criteria"`
}

// DefaultConfig returns the built-in configuration tier. Stored settings
// and per-call overrides layer on top of it.
func DefaultConfig() *Config {
	return &Config{
		Tolerance: 1.0,
		Targets: map[string]GradeTarget{
			"statement": {
				Target: 9, Min: 8, Max: 10,
				Note: "Public statements read by general audiences",
			},
			"press_release": {
				Target: 10, Min: 9, Max: 12,
				Note: "Press releases aimed at journalists",
			},
			"speech": {
				Target: 8, Min: 6, Max: 9,
				Note: "Spoken delivery lands lower than written copy",
			},
			"talking_points": {
				Target: 8, Min: 7, Max: 10,
				Note: "Internal talking points for surrogates",
			},
			"social_post": {
				Target: 7, Min: 5, Max: 8,
				Note: "Short-form social content",
			},
			"quote": {
				Target: 8, Min: 6, Max: 10,
				Note: "Attributed quotes inside releases",
			},
		},
		RunOn: RunOnThresholds{
			MaxWords:            35,
			StrictWarnWords:     25,
			StrictCriticalWords: 30,
			MaxConjunctions:     3,
			MaxClauseIndicators: 4,
		},
		Substitutions: defaultSubstitutions(),
		Criteria:      defaultCriteriaSets(),
	}
}

// LoadConfig reads a YAML configuration file and overlays it on the
// built-in defaults. A missing or malformed file is non-fatal: the
// defaults are returned together with the error so callers can log it
// and continue.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&file)
	return cfg, nil
}

// Merge overlays the non-zero parts of other onto c. Map entries replace
// per key; scalar thresholds replace only when set.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Tolerance > 0 {
		c.Tolerance = other.Tolerance
	}
	for name, target := range other.Targets {
		c.Targets[name] = target
	}
	if other.RunOn.MaxWords > 0 {
		c.RunOn.MaxWords = other.RunOn.MaxWords
	}
	if other.RunOn.StrictWarnWords > 0 {
		c.RunOn.StrictWarnWords = other.RunOn.StrictWarnWords
	}
	if other.RunOn.StrictCriticalWords > 0 {
		c.RunOn.StrictCriticalWords = other.RunOn.StrictCriticalWords
	}
	if other.RunOn.MaxConjunctions > 0 {
		c.RunOn.MaxConjunctions = other.RunOn.MaxConjunctions
	}
	if other.RunOn.MaxClauseIndicators > 0 {
		c.RunOn.MaxClauseIndicators = other.RunOn.MaxClauseIndicators
	}
	for word, simple := range other.Substitutions {
		c.Substitutions[word] = simple
	}
	for name, set := range other.Criteria {
		c.Criteria[name] = set
	}
}

// TargetFor resolves the grade target for a content type. Unknown types
// fall back to the statement target, which always exists in the defaults.
func (c *Config) TargetFor(contentType string) GradeTarget {
	if t, ok := c.Targets[contentType]; ok {
		return t
	}
	return c.Targets["statement"]
}

// SetTarget updates one content type's settings at runtime.
func (c *Config) SetTarget(contentType string, target GradeTarget) {
	if c.Targets == nil {
		c.Targets = make(map[string]GradeTarget)
	}
	c.Targets[contentType] = target
}

func defaultCriteriaSets() map[string]CriteriaSet {
	release := CriteriaSet{
		Description: "Press releases and public statements",
		Criteria: []CriterionSpec{
			{ID: "has_content", Name: "Has content", Weight: 10, Critical: true},
			{ID: "length_in_range", Name: "Length in range", Weight: 10, Critical: true},
			{ID: "no_banned_phrases", Name: "No banned phrases", Weight: 10, Critical: true},
			{ID: "readability_on_target", Name: "Readability on target", Weight: 20},
			{ID: "sentence_structure", Name: "Sentence structure", Weight: 15},
			{ID: "active_voice", Name: "Active voice", Weight: 10},
			{ID: "style_consistent", Name: "Style consistency", Weight: 15},
			{ID: "covers_key_points", Name: "Covers brief key points", Weight: 10},
		},
	}
	speech := CriteriaSet{
		Description: "Copy written for spoken delivery",
		Criteria: []CriterionSpec{
			{ID: "has_content", Name: "Has content", Weight: 10, Critical: true},
			{ID: "no_banned_phrases", Name: "No banned phrases", Weight: 10, Critical: true},
			{ID: "readability_on_target", Name: "Readability on target", Weight: 20},
			{ID: "speakable_sentences", Name: "Speakable sentences", Weight: 25},
			{ID: "style_consistent", Name: "Style consistency", Weight: 20},
			{ID: "covers_key_points", Name: "Covers brief key points", Weight: 15},
		},
	}
	social := CriteriaSet{
		Description: "Short-form social content",
		Criteria: []CriterionSpec{
			{ID: "has_content", Name: "Has content", Weight: 10, Critical: true},
			{ID: "no_banned_phrases", Name: "No banned phrases", Weight: 10, Critical: true},
			{ID: "length_in_range", Name: "Length in range", Weight: 10, Critical: true},
			{ID: "readability_on_target", Name: "Readability on target", Weight: 20},
			{ID: "has_call_to_action", Name: "Has call to action", Weight: 25},
			{ID: "active_voice", Name: "Active voice", Weight: 10},
		},
	}
	return map[string]CriteriaSet{
		"press_release":  release,
		"statement":      release,
		"speech":         speech,
		"talking_points": speech,
		"social_post":    social,
	}
}
