package models

// Difficulty labels bucketed from the averaged grade.
const (
	DifficultyVeryEasy      = "Very Easy"
	DifficultyEasy          = "Easy"
	DifficultyModerate      = "Moderate"
	DifficultyDifficult     = "Difficult"
	DifficultyChallenging   = "Challenging"
	DifficultyVeryDifficult = "Very Difficult"
)

// ReadabilityReport carries the five grade-scale formula results, the
// reading-ease score (its own 0-100 scale, never averaged with grades),
// and the comparison against the target grade.
type ReadabilityReport struct {
	Stats TextStatistics `json:"stats" yaml:"stats"`

	FleschKincaid float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	GunningFog    float64 `json:"gunning_fog_index" yaml:"gunning_fog_index"`
	SMOG          float64 `json:"smog_index" yaml:"smog_index"`
	ColemanLiau   float64 `json:"coleman_liau_index" yaml:"coleman_liau_index"`
	ARI           float64 `json:"automated_readability_index" yaml:"automated_readability_index"`
	ReadingEase   float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`

	AverageGrade float64 `json:"average_grade" yaml:"average_grade"`
	TargetGrade  float64 `json:"target_grade" yaml:"target_grade"`
	Deviation    float64 `json:"deviation" yaml:"deviation"`
	Difficulty   string  `json:"difficulty" yaml:"difficulty"`
	OnTarget     bool    `json:"on_target" yaml:"on_target"`

	// Issues carries non-fatal problems with the input itself, e.g.
	// "no content to analyze" for empty text.
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Suggestion severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Suggestion priority tiers. Lower sorts first.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Suggestion is one concrete, ranked piece of editorial advice. When
// SearchText/ReplaceWith are set the suggestion can be applied directly
// with a literal substitution; otherwise it is advisory.
type Suggestion struct {
	Type        string `json:"type" yaml:"type"`
	Severity    string `json:"severity" yaml:"severity"`
	Location    string `json:"location" yaml:"location"`
	Message     string `json:"message" yaml:"message"`
	Detail      string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Rewrite     string `json:"rewrite,omitempty" yaml:"rewrite,omitempty"`
	SearchText  string `json:"search_text,omitempty" yaml:"search_text,omitempty"`
	ReplaceWith string `json:"replace_with,omitempty" yaml:"replace_with,omitempty"`
	Priority    int    `json:"priority" yaml:"priority"`
}
