package models

// Readiness levels, from best to worst.
const (
	ReadyForApproval   = "ready_for_approval"
	ReadyForReview     = "ready_for_review"
	NeedsImprovement   = "needs_improvement"
	NeedsRevision      = "needs_revision"
	NeedsMajorRevision = "needs_major_revision"
)

// CriterionSpec is the configuration half of one quality criterion: which
// registered check runs, how much it counts, and whether a failure blocks
// approval. The executable check lives in the registry, keyed by ID.
type CriterionSpec struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Weight   float64 `yaml:"weight" json:"weight"`
	Critical bool    `yaml:"critical" json:"critical"`
}

// CriteriaSet is the full list of criteria applied to one assignment type.
type CriteriaSet struct {
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Criteria    []CriterionSpec `yaml:"criteria" json:"criteria"`
}

// CriterionResult records the outcome of one executed criterion. For
// critical requirements Passed is authoritative and Score is 0 or 100;
// for quality indicators Score carries the graded 0-100 result.
type CriterionResult struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Critical bool    `json:"critical" yaml:"critical"`
	Passed   bool    `json:"passed" yaml:"passed"`
	Score    float64 `json:"score" yaml:"score"`
	Weight   float64 `json:"weight" yaml:"weight"`
	Message  string  `json:"message,omitempty" yaml:"message,omitempty"`
}

// QualityScoreResult is the aggregate verdict for one text against one
// criteria set. OverallScore is always weight-normalized and clamped to
// [0,100]; any critical issue forces the needs_revision readiness level
// regardless of the numeric score.
type QualityScoreResult struct {
	AssignmentType string            `json:"assignment_type" yaml:"assignment_type"`
	Criteria       []CriterionResult `json:"criteria" yaml:"criteria"`
	CriticalIssues []string          `json:"critical_issues,omitempty" yaml:"critical_issues,omitempty"`
	Suggestions    []string          `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	OverallScore   float64           `json:"overall_score" yaml:"overall_score"`
	Readiness      string            `json:"readiness" yaml:"readiness"`
}

// Brief is the typed communications-brief context passed to quality
// checks. All fields are optional; checks that need an absent field
// report a neutral result instead of failing.
type Brief struct {
	Audience      string   `yaml:"audience,omitempty" json:"audience,omitempty"`
	KeyPoints     []string `yaml:"key_points,omitempty" json:"key_points,omitempty"`
	BannedPhrases []string `yaml:"banned_phrases,omitempty" json:"banned_phrases,omitempty"`
	CallToAction  bool     `yaml:"call_to_action,omitempty" json:"call_to_action,omitempty"`
}
