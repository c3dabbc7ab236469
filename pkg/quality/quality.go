// Package quality aggregates named, weighted checks into one explainable
// score and a readiness classification. Criterion weights and critical
// flags are configuration; the executable checks live in a registry
// keyed by criterion ID.
package quality

import (
	"fmt"
	"math"

	"github.com/polisapp/copydesk/models"
)

// neutralScore is the degraded result for configuration errors such as
// an unknown assignment type. Never treated as passing.
const neutralScore = 50.0

// indicatorSuggestionFloor is the indicator score below which a
// non-critical suggestion is surfaced.
const indicatorSuggestionFloor = 70.0

// CheckContext is the typed context passed to every check. All fields
// are optional; checks that need an absent field report neutrally.
type CheckContext struct {
	AssignmentType string
	ContentType    string
	TargetGrade    float64
	Tolerance      float64
	Brief          *models.Brief
	StyleProfile   *models.StyleProfile
}

// CheckResult is the outcome of one check. Critical requirements use
// Passed; quality indicators use Score (0-100).
type CheckResult struct {
	Passed  bool
	Score   float64
	Message string
}

// CheckFunc is the common contract every criterion implements.
type CheckFunc func(text string, ctx *CheckContext) CheckResult

// Registry maps criterion IDs to their check functions. Separate from
// the weight/critical metadata so the measured thing and how much it
// counts can be tuned independently.
type Registry struct {
	checks map[string]CheckFunc
}

func NewRegistry() *Registry {
	return &Registry{checks: make(map[string]CheckFunc)}
}

// Register binds a check function to an ID, replacing any previous one.
func (r *Registry) Register(id string, fn CheckFunc) {
	r.checks[id] = fn
}

// Lookup returns the check for an ID.
func (r *Registry) Lookup(id string) (CheckFunc, bool) {
	fn, ok := r.checks[id]
	return fn, ok
}

// Scorer executes a criteria set against a text and aggregates the
// weight-normalized score.
type Scorer struct {
	registry *Registry
	sets     map[string]models.CriteriaSet
}

// NewScorer builds a scorer over a registry and the per-assignment-type
// criteria sets.
func NewScorer(registry *Registry, sets map[string]models.CriteriaSet) *Scorer {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Scorer{registry: registry, sets: sets}
}

// Score runs every criterion for the assignment type. An unknown type is
// a configuration error: it returns a named error alongside a neutral
// degraded result, never a silent pass.
func (s *Scorer) Score(text, assignmentType string, ctx *CheckContext) (models.QualityScoreResult, error) {
	result := models.QualityScoreResult{AssignmentType: assignmentType}

	set, ok := s.sets[assignmentType]
	if !ok {
		result.OverallScore = neutralScore
		result.Readiness = readiness(neutralScore, 1)
		result.CriticalIssues = append(result.CriticalIssues,
			fmt.Sprintf("no criteria configured for assignment type %q", assignmentType))
		return result, fmt.Errorf("no criteria for assignment type %q", assignmentType)
	}

	if ctx == nil {
		ctx = &CheckContext{}
	}
	if ctx.AssignmentType == "" {
		ctx.AssignmentType = assignmentType
	}

	var numerator, denominator float64

	for _, spec := range set.Criteria {
		fn, ok := s.registry.Lookup(spec.ID)
		if !ok {
			// A configured criterion without a registered check is a
			// config defect; report it, keep the weight in the
			// denominator so it cannot inflate the score.
			denominator += spec.Weight
			result.CriticalIssues = append(result.CriticalIssues,
				fmt.Sprintf("criterion %q has no registered check", spec.ID))
			continue
		}

		checked := fn(text, ctx)
		cr := models.CriterionResult{
			ID:       spec.ID,
			Name:     spec.Name,
			Critical: spec.Critical,
			Weight:   spec.Weight,
			Message:  checked.Message,
		}

		denominator += spec.Weight
		if spec.Critical {
			cr.Passed = checked.Passed
			if checked.Passed {
				cr.Score = 100
				numerator += spec.Weight
			} else {
				msg := checked.Message
				if msg == "" {
					msg = fmt.Sprintf("%s failed", spec.Name)
				}
				result.CriticalIssues = append(result.CriticalIssues, msg)
			}
		} else {
			score := math.Min(100, math.Max(0, checked.Score))
			cr.Score = score
			cr.Passed = score >= indicatorSuggestionFloor
			numerator += (score / 100) * spec.Weight
			if score < indicatorSuggestionFloor {
				msg := checked.Message
				if msg == "" {
					msg = fmt.Sprintf("%s scored %.0f", spec.Name, score)
				}
				result.Suggestions = append(result.Suggestions, msg)
			}
		}

		result.Criteria = append(result.Criteria, cr)
	}

	if denominator > 0 {
		result.OverallScore = math.Min(100, math.Max(0, 100*numerator/denominator))
	}
	result.Readiness = readiness(result.OverallScore, len(result.CriticalIssues))

	return result, nil
}

// readiness classifies the final verdict. Any critical issue forces
// needs_revision regardless of the numeric score.
func readiness(score float64, criticalIssues int) string {
	if criticalIssues > 0 {
		return models.NeedsRevision
	}
	switch {
	case score >= 85:
		return models.ReadyForApproval
	case score >= 70:
		return models.ReadyForReview
	case score >= 50:
		return models.NeedsImprovement
	default:
		return models.NeedsMajorRevision
	}
}
