package quality

import (
	"strings"
	"testing"

	"github.com/polisapp/copydesk/models"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	r.Register("always_pass", func(string, *CheckContext) CheckResult {
		return CheckResult{Passed: true}
	})
	r.Register("always_fail", func(string, *CheckContext) CheckResult {
		return CheckResult{Message: "the requirement failed"}
	})
	r.Register("full_score", func(string, *CheckContext) CheckResult {
		return CheckResult{Score: 100}
	})
	r.Register("zero_score", func(string, *CheckContext) CheckResult {
		return CheckResult{Score: 0, Message: "scored zero"}
	})
	r.Register("sixty_score", func(string, *CheckContext) CheckResult {
		return CheckResult{Score: 60, Message: "needs polish"}
	})
	return r
}

func TestAllPassScoresHundred(t *testing.T) {
	sets := map[string]models.CriteriaSet{
		"statement": {Criteria: []models.CriterionSpec{
			{ID: "always_pass", Name: "Critical A", Weight: 10, Critical: true},
			{ID: "always_pass", Name: "Critical B", Weight: 5, Critical: true},
			{ID: "full_score", Name: "Indicator A", Weight: 20},
			{ID: "full_score", Name: "Indicator B", Weight: 15},
		}},
	}
	scorer := NewScorer(testRegistry(t), sets)

	result, err := scorer.Score("text", "statement", nil)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if result.OverallScore != 100 {
		t.Errorf("OverallScore = %f, want 100", result.OverallScore)
	}
	if len(result.CriticalIssues) != 0 {
		t.Errorf("CriticalIssues = %v, want none", result.CriticalIssues)
	}
	if result.Readiness != models.ReadyForApproval {
		t.Errorf("Readiness = %q, want %q", result.Readiness, models.ReadyForApproval)
	}
}

func TestAllFailScoresZero(t *testing.T) {
	sets := map[string]models.CriteriaSet{
		"statement": {Criteria: []models.CriterionSpec{
			{ID: "always_fail", Name: "Critical A", Weight: 10, Critical: true},
			{ID: "zero_score", Name: "Indicator A", Weight: 20},
		}},
	}
	scorer := NewScorer(testRegistry(t), sets)

	result, err := scorer.Score("text", "statement", nil)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if result.OverallScore != 0 {
		t.Errorf("OverallScore = %f, want 0", result.OverallScore)
	}
	if result.Readiness != models.NeedsRevision {
		t.Errorf("Readiness = %q, want %q", result.Readiness, models.NeedsRevision)
	}
}

func TestCriticalFailureOverridesScore(t *testing.T) {
	// One failing critical worth a tenth of the weight: the numeric
	// score lands at 90, but readiness must still be needs_revision.
	sets := map[string]models.CriteriaSet{
		"statement": {Criteria: []models.CriterionSpec{
			{ID: "always_fail", Name: "Critical A", Weight: 10, Critical: true},
			{ID: "full_score", Name: "Indicator A", Weight: 90},
		}},
	}
	scorer := NewScorer(testRegistry(t), sets)

	result, err := scorer.Score("text", "statement", nil)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if result.OverallScore != 90 {
		t.Errorf("OverallScore = %f, want 90", result.OverallScore)
	}
	if result.Readiness != models.NeedsRevision {
		t.Errorf("Readiness = %q, want %q despite score 90", result.Readiness, models.NeedsRevision)
	}
	if len(result.CriticalIssues) != 1 {
		t.Errorf("CriticalIssues = %v, want exactly one", result.CriticalIssues)
	}
}

func TestWeightNormalization(t *testing.T) {
	// 60-score indicator at weight 30 plus 100-score at weight 10:
	// (0.6*30 + 1.0*10) / 40 = 0.70.
	sets := map[string]models.CriteriaSet{
		"statement": {Criteria: []models.CriterionSpec{
			{ID: "sixty_score", Name: "A", Weight: 30},
			{ID: "full_score", Name: "B", Weight: 10},
		}},
	}
	scorer := NewScorer(testRegistry(t), sets)

	result, err := scorer.Score("text", "statement", nil)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if result.OverallScore != 70 {
		t.Errorf("OverallScore = %f, want 70", result.OverallScore)
	}
	if result.Readiness != models.ReadyForReview {
		t.Errorf("Readiness = %q, want %q", result.Readiness, models.ReadyForReview)
	}
}

func TestLowIndicatorSurfacesSuggestion(t *testing.T) {
	sets := map[string]models.CriteriaSet{
		"statement": {Criteria: []models.CriterionSpec{
			{ID: "sixty_score", Name: "Indicator A", Weight: 10},
		}},
	}
	scorer := NewScorer(testRegistry(t), sets)

	result, _ := scorer.Score("text", "statement", nil)
	if len(result.Suggestions) != 1 || result.Suggestions[0] != "needs polish" {
		t.Errorf("Suggestions = %v, want the sub-70 indicator message", result.Suggestions)
	}
	if len(result.CriticalIssues) != 0 {
		t.Errorf("a low indicator must not create critical issues: %v", result.CriticalIssues)
	}
}

func TestUnknownAssignmentType(t *testing.T) {
	scorer := NewScorer(testRegistry(t), map[string]models.CriteriaSet{})

	result, err := scorer.Score("text", "zine", nil)
	if err == nil {
		t.Fatal("expected a named error for an unknown assignment type")
	}
	if !strings.Contains(err.Error(), "zine") {
		t.Errorf("error %q does not name the unknown type", err)
	}
	if result.OverallScore != 50 {
		t.Errorf("OverallScore = %f, want the neutral 50", result.OverallScore)
	}
	if result.Readiness != models.NeedsRevision {
		t.Errorf("Readiness = %q, want %q (never a silent pass)", result.Readiness, models.NeedsRevision)
	}
}

func TestUnregisteredCheckReported(t *testing.T) {
	sets := map[string]models.CriteriaSet{
		"statement": {Criteria: []models.CriterionSpec{
			{ID: "no_such_check", Name: "Ghost", Weight: 10},
			{ID: "full_score", Name: "Indicator", Weight: 10},
		}},
	}
	scorer := NewScorer(testRegistry(t), sets)

	result, err := scorer.Score("text", "statement", nil)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	// The ghost's weight stays in the denominator: 10/20 = 50.
	if result.OverallScore != 50 {
		t.Errorf("OverallScore = %f, want 50", result.OverallScore)
	}
	if len(result.CriticalIssues) != 1 {
		t.Errorf("CriticalIssues = %v, want the unregistered-check report", result.CriticalIssues)
	}
}

func TestReadinessBoundaries(t *testing.T) {
	tests := []struct {
		score    float64
		critical int
		want     string
	}{
		{100, 0, models.ReadyForApproval},
		{85, 0, models.ReadyForApproval},
		{84.9, 0, models.ReadyForReview},
		{70, 0, models.ReadyForReview},
		{69.9, 0, models.NeedsImprovement},
		{50, 0, models.NeedsImprovement},
		{49.9, 0, models.NeedsMajorRevision},
		{0, 0, models.NeedsMajorRevision},
		{100, 1, models.NeedsRevision},
	}

	for _, tt := range tests {
		if got := readiness(tt.score, tt.critical); got != tt.want {
			t.Errorf("readiness(%f, %d) = %q, want %q", tt.score, tt.critical, got, tt.want)
		}
	}
}

func TestDefaultRegistryChecks(t *testing.T) {
	registry := DefaultRegistry(nil, nil)

	hasContent, ok := registry.Lookup("has_content")
	if !ok {
		t.Fatal("has_content not registered")
	}
	if res := hasContent("   ", &CheckContext{}); res.Passed {
		t.Error("has_content passed on whitespace-only input")
	}
	if res := hasContent("We will win.", &CheckContext{}); !res.Passed {
		t.Error("has_content failed on real input")
	}

	banned, ok := registry.Lookup("no_banned_phrases")
	if !ok {
		t.Fatal("no_banned_phrases not registered")
	}
	ctx := &CheckContext{Brief: &models.Brief{BannedPhrases: []string{"hardworking taxpayers"}}}
	if res := banned("A fair deal for hardworking taxpayers.", ctx); res.Passed {
		t.Error("no_banned_phrases passed despite a banned phrase")
	}
	if res := banned("A fair deal for every family.", ctx); !res.Passed {
		t.Error("no_banned_phrases failed clean input")
	}

	cta, ok := registry.Lookup("has_call_to_action")
	if !ok {
		t.Fatal("has_call_to_action not registered")
	}
	if res := cta("Join us on Saturday.", &CheckContext{}); res.Score != 100 {
		t.Errorf("call-to-action score = %f, want 100", res.Score)
	}
	if res := cta("The weather is nice.", &CheckContext{}); res.Score >= 70 {
		t.Errorf("missing call to action scored %f, want below 70", res.Score)
	}

	keyPoints, ok := registry.Lookup("covers_key_points")
	if !ok {
		t.Fatal("covers_key_points not registered")
	}
	briefCtx := &CheckContext{Brief: &models.Brief{KeyPoints: []string{"expand medicaid", "lower prescription costs"}}}
	res := keyPoints("We will expand Medicaid and lower prescription costs for seniors.", briefCtx)
	if res.Score != 100 {
		t.Errorf("covers_key_points = %f, want 100 with both points mentioned", res.Score)
	}
	res = keyPoints("We love this state.", briefCtx)
	if res.Score != 0 {
		t.Errorf("covers_key_points = %f, want 0 with no points mentioned", res.Score)
	}
}

func TestScoreEndToEndWithDefaults(t *testing.T) {
	cfg := models.DefaultConfig()
	registry := DefaultRegistry(cfg, nil)
	scorer := NewScorer(registry, cfg.Criteria)

	text := "Our campaign will lower costs for working families. We will expand Medicaid. " +
		"We will fix the roads people drive every day. Join us and help deliver results. " +
		"Families deserve leaders who show up, listen, and act. We are ready to serve this state. " +
		"Voters asked for honest answers and steady hands. That is what this team offers every single day."

	result, err := scorer.Score(text, "statement", nil)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if result.OverallScore <= 0 || result.OverallScore > 100 {
		t.Errorf("OverallScore = %f, want inside (0,100]", result.OverallScore)
	}
	if result.Readiness == "" {
		t.Error("Readiness not classified")
	}
	if len(result.Criteria) != len(cfg.Criteria["statement"].Criteria) {
		t.Errorf("got %d criterion results, want %d",
			len(result.Criteria), len(cfg.Criteria["statement"].Criteria))
	}
}
