package quality

import (
	"fmt"
	"math"
	"strings"

	"github.com/polisapp/copydesk/models"
	"github.com/polisapp/copydesk/pkg/readability"
	"github.com/polisapp/copydesk/pkg/runon"
	"github.com/polisapp/copydesk/pkg/styleprofile"
	"github.com/polisapp/copydesk/pkg/textstats"
)

// Penalty applied per flagged sentence or style deviation in the graded
// checks. Hand-tuned; kept for behavioral compatibility.
const perIssuePenalty = 15.0

// callToActionPhrases are the verbs short-form copy is expected to end
// on. Checked as plain substrings.
var callToActionPhrases = []string{
	"join", "vote", "donate", "sign up", "sign the", "volunteer",
	"visit", "learn more", "contact", "call", "share", "rsvp",
}

// DefaultRegistry builds the built-in check registry: the engine's own
// readability, structure, and style components exposed as criteria, plus
// the brief-driven editorial checks.
func DefaultRegistry(cfg *models.Config, stats *textstats.Analyzer) *Registry {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	if stats == nil {
		stats = textstats.NewAnalyzer()
	}

	scorer := readability.NewScorer(cfg, stats)
	checker := runon.NewChecker(cfg.RunOn)
	strict := runon.NewStrictChecker(cfg.RunOn)
	profiler := styleprofile.NewProfiler(stats)

	r := NewRegistry()

	r.Register("has_content", func(text string, _ *CheckContext) CheckResult {
		if strings.TrimSpace(text) == "" {
			return CheckResult{Message: "no content to analyze"}
		}
		return CheckResult{Passed: true}
	})

	r.Register("length_in_range", func(text string, ctx *CheckContext) CheckResult {
		words := len(textstats.Words(text))
		min, max := lengthRange(ctx.AssignmentType)
		if words < min {
			return CheckResult{Message: fmt.Sprintf("%d words is under the %d-word minimum", words, min)}
		}
		if words > max {
			return CheckResult{Message: fmt.Sprintf("%d words is over the %d-word maximum", words, max)}
		}
		return CheckResult{Passed: true}
	})

	r.Register("no_banned_phrases", func(text string, ctx *CheckContext) CheckResult {
		if ctx.Brief == nil || len(ctx.Brief.BannedPhrases) == 0 {
			return CheckResult{Passed: true}
		}
		lower := strings.ToLower(text)
		for _, phrase := range ctx.Brief.BannedPhrases {
			if phrase != "" && strings.Contains(lower, strings.ToLower(phrase)) {
				return CheckResult{Message: fmt.Sprintf("contains banned phrase %q", phrase)}
			}
		}
		return CheckResult{Passed: true}
	})

	r.Register("readability_on_target", func(text string, ctx *CheckContext) CheckResult {
		var override *readability.Override
		if ctx.TargetGrade > 0 {
			override = &readability.Override{TargetGrade: &ctx.TargetGrade}
			if ctx.Tolerance > 0 {
				override.Tolerance = &ctx.Tolerance
			}
		}
		report := scorer.Score(text, ctx.contentType(), override)
		score := math.Max(0, 100-perIssuePenalty*math.Abs(report.Deviation))
		return CheckResult{
			Score: score,
			Message: fmt.Sprintf("grade %.1f against target %.0f (%s)",
				report.AverageGrade, report.TargetGrade, report.Difficulty),
		}
	})

	r.Register("sentence_structure", func(text string, _ *CheckContext) CheckResult {
		flagged := checker.RunOns(text)
		score := math.Max(0, 100-perIssuePenalty*float64(len(flagged)))
		msg := ""
		if len(flagged) > 0 {
			msg = fmt.Sprintf("%d run-on sentence(s): %s", len(flagged), flagged[0].Detail)
		}
		return CheckResult{Score: score, Message: msg}
	})

	r.Register("speakable_sentences", func(text string, _ *CheckContext) CheckResult {
		score := 100.0
		var worst string
		for _, rec := range strict.RunOns(text) {
			penalty := perIssuePenalty
			if rec.Severity == models.SeverityError {
				penalty = 2 * perIssuePenalty
			}
			score -= penalty
			worst = rec.Detail
		}
		score = math.Max(0, score)
		msg := ""
		if worst != "" {
			msg = "hard to deliver aloud: " + worst
		}
		return CheckResult{Score: score, Message: msg}
	})

	r.Register("style_consistent", func(text string, ctx *CheckContext) CheckResult {
		if ctx.StyleProfile == nil || ctx.StyleProfile.SampleCount == 0 {
			return CheckResult{Score: 100, Message: "no reference corpus; style check skipped"}
		}
		deviations := profiler.CheckConsistency(text, *ctx.StyleProfile)
		score := math.Max(0, 100-perIssuePenalty*float64(len(deviations)))
		msg := ""
		if len(deviations) > 0 {
			msg = fmt.Sprintf("%d style deviation(s): %s", len(deviations), deviations[0].Message)
		}
		return CheckResult{Score: score, Message: msg}
	})

	r.Register("active_voice", func(text string, _ *CheckContext) CheckResult {
		st := stats.Analyze(text)
		if st.SentenceCount == 0 {
			return CheckResult{Score: 100}
		}
		passive := countPassive(text)
		density := float64(passive) / float64(st.SentenceCount)
		score := math.Max(0, 100-100*density)
		msg := ""
		if passive > 0 {
			msg = fmt.Sprintf("%d passive construction(s)", passive)
		}
		return CheckResult{Score: score, Message: msg}
	})

	r.Register("has_call_to_action", func(text string, ctx *CheckContext) CheckResult {
		if ctx.Brief != nil && !ctx.Brief.CallToAction {
			return CheckResult{Score: 100, Message: "brief does not ask for a call to action"}
		}
		lower := strings.ToLower(text)
		for _, phrase := range callToActionPhrases {
			if strings.Contains(lower, phrase) {
				return CheckResult{Score: 100}
			}
		}
		return CheckResult{Score: 40, Message: "no call to action found"}
	})

	r.Register("covers_key_points", func(text string, ctx *CheckContext) CheckResult {
		if ctx.Brief == nil || len(ctx.Brief.KeyPoints) == 0 {
			return CheckResult{Score: 100, Message: "no key points in brief"}
		}
		lower := strings.ToLower(text)
		covered := 0
		var missing []string
		for _, point := range ctx.Brief.KeyPoints {
			if keyPointMentioned(lower, point) {
				covered++
			} else {
				missing = append(missing, point)
			}
		}
		score := 100 * float64(covered) / float64(len(ctx.Brief.KeyPoints))
		msg := ""
		if len(missing) > 0 {
			msg = "missing key point(s): " + strings.Join(missing, "; ")
		}
		return CheckResult{Score: score, Message: msg}
	})

	return r
}

// contentType picks the readability settings key: an explicit content
// type wins, else the assignment type doubles as the key.
func (ctx *CheckContext) contentType() string {
	if ctx.ContentType != "" {
		return ctx.ContentType
	}
	return ctx.AssignmentType
}

// lengthRange returns word-count bounds per assignment type.
func lengthRange(assignmentType string) (int, int) {
	switch assignmentType {
	case "social_post":
		return 5, 80
	case "speech":
		return 150, 3000
	case "talking_points":
		return 50, 800
	default:
		return 50, 1200
	}
}

// keyPointMentioned checks whether at least half of a key point's
// significant words appear in the text.
func keyPointMentioned(lowerText, point string) bool {
	words := textstats.Words(strings.ToLower(point))
	significant := 0
	found := 0
	for _, w := range words {
		clean := textstats.CleanWord(w)
		if len(clean) < 4 {
			continue
		}
		significant++
		if strings.Contains(lowerText, clean) {
			found++
		}
	}
	if significant == 0 {
		return strings.Contains(lowerText, strings.ToLower(strings.TrimSpace(point)))
	}
	return float64(found)/float64(significant) >= 0.5
}

// countPassive mirrors the suggestion generator's passive-voice bigram
// scan. Kept local so quality checks stay free of suggestion imports.
func countPassive(text string) int {
	auxiliaries := map[string]bool{
		"am": true, "is": true, "are": true, "was": true, "were": true,
		"be": true, "been": true, "being": true,
	}
	words := textstats.Words(text)
	count := 0
	for i := 0; i+1 < len(words); i++ {
		if !auxiliaries[textstats.CleanWord(words[i])] {
			continue
		}
		if strings.HasSuffix(textstats.CleanWord(words[i+1]), "ed") {
			count++
		}
	}
	return count
}
