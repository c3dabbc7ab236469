// Package suggest turns readability deviations and structure flags into
// ranked, concrete rewrite suggestions: sentence splits, one-click word
// substitutions, and style tips.
package suggest

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/polisapp/copydesk/models"
	"github.com/polisapp/copydesk/pkg/runon"
	"github.com/polisapp/copydesk/pkg/textstats"
)

// Suggestion categories.
const (
	TypeGradeLevel    = "grade_level"
	TypeSentenceSplit = "sentence_split"
	TypeWordChoice    = "word_choice"
	TypeStyleTip      = "style_tip"
	TypePassiveVoice  = "passive_voice"
	TypeVariety       = "variety"
)

// maxSubstitutions bounds the word-change suggestions per call so a
// jargon-heavy draft does not bury the caller.
const maxSubstitutions = 10

// Generator produces suggestions from a readability report and the
// original text. The substitution table comes from configuration.
type Generator struct {
	substitutions map[string]string
	stats         *textstats.Analyzer
}

func NewGenerator(cfg *models.Config, stats *textstats.Analyzer) *Generator {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	if stats == nil {
		stats = textstats.NewAnalyzer()
	}
	return &Generator{
		substitutions: cfg.Substitutions,
		stats:         stats,
	}
}

// Generate emits the ranked suggestion list for a report that is off
// target. Suggestions are sorted by priority tier but never deduplicated
// by message.
func (g *Generator) Generate(report models.ReadabilityReport, text string) []models.Suggestion {
	var suggestions []models.Suggestion

	if report.Stats.WordCount == 0 {
		return nil
	}

	switch {
	case report.Deviation > 0:
		suggestions = append(suggestions, g.simplify(report, text)...)
	case report.Deviation < 0:
		suggestions = append(suggestions, g.enrich(report)...)
	}

	if passive := g.passiveVoice(text, report.Stats); passive != nil {
		suggestions = append(suggestions, *passive)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority < suggestions[j].Priority
	})

	return suggestions
}

// simplify handles the too-difficult branch: the text reads above the
// target grade.
func (g *Generator) simplify(report models.ReadabilityReport, text string) []models.Suggestion {
	suggestions := []models.Suggestion{{
		Type:     TypeGradeLevel,
		Severity: models.SeverityWarning,
		Location: "overall",
		Message: fmt.Sprintf("Reading level is grade %.1f, %.1f grades above the %.0f target",
			report.AverageGrade, report.Deviation, report.TargetGrade),
		Detail:   "Shorter sentences and plainer words bring the grade down fastest.",
		Priority: models.PriorityHigh,
	}}

	if report.Stats.AvgSentenceLength > 20 {
		suggestions = append(suggestions, g.splitLongest(text)...)
	}

	complexShare := 0.0
	if report.Stats.WordCount > 0 {
		complexShare = float64(report.Stats.ComplexWordCount) / float64(report.Stats.WordCount)
	}
	if complexShare > 0.15 {
		suggestions = append(suggestions, g.substitute(text)...)
	}

	if report.Stats.AvgSyllablesPerWord > 1.7 {
		suggestions = append(suggestions, models.Suggestion{
			Type:     TypeWordChoice,
			Severity: models.SeverityInfo,
			Location: "overall",
			Message:  "Prefer shorter words",
			Detail:   "The average word runs long; one- and two-syllable words keep spoken copy punchy.",
			Priority: models.PriorityMedium,
		})
	}

	suggestions = append(suggestions, styleTips()...)
	return suggestions
}

// enrich handles the too-simple branch. These are advisory only; there is
// no mechanical rewrite for adding substance.
func (g *Generator) enrich(report models.ReadabilityReport) []models.Suggestion {
	return []models.Suggestion{
		{
			Type:     TypeVariety,
			Severity: models.SeverityInfo,
			Location: "overall",
			Message: fmt.Sprintf("Reading level is grade %.1f, below the %.0f target",
				report.AverageGrade, report.TargetGrade),
			Detail:   "Add sentence variety: mix short declaratives with a longer supporting sentence.",
			Priority: models.PriorityMedium,
		},
		{
			Type:     TypeVariety,
			Severity: models.SeverityInfo,
			Location: "overall",
			Message:  "Use more precise vocabulary",
			Detail:   "Name the policy, the number, or the place instead of a general word.",
			Priority: models.PriorityMedium,
		},
	}
}

// splitLongest proposes a concrete split for the two or three longest
// sentences: at the first coordinating conjunction past the opening words,
// or at the word-count midpoint when no conjunction exists.
func (g *Generator) splitLongest(text string) []models.Suggestion {
	sentences := textstats.Sentences(text)
	type indexed struct {
		index int
		words []string
	}

	var candidates []indexed
	for i, s := range sentences {
		words := textstats.Words(s)
		if len(words) > 20 {
			candidates = append(candidates, indexed{index: i, words: words})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].words) > len(candidates[j].words)
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	var suggestions []models.Suggestion
	for _, c := range candidates {
		first, second := splitSentence(c.words)
		suggestions = append(suggestions, models.Suggestion{
			Type:     TypeSentenceSplit,
			Severity: models.SeverityWarning,
			Location: fmt.Sprintf("sentence %d", c.index+1),
			Message:  fmt.Sprintf("Split this %d-word sentence", len(c.words)),
			Detail:   "Two shorter sentences carry the same point with less strain.",
			Rewrite:  first + " " + second,
			Priority: models.PriorityMedium,
		})
	}
	return suggestions
}

// splitSentence breaks a word list into two re-capitalized, re-punctuated
// sentences. The boundary is the first coordinating conjunction after the
// third word, or the midpoint when none exists.
func splitSentence(words []string) (string, string) {
	split := -1
	for i := 3; i < len(words)-2; i++ {
		if runon.IsCoordinatingConjunction(words[i]) {
			split = i
			break
		}
	}
	if split < 0 {
		split = len(words) / 2
	}

	first := strings.Join(words, " ")
	second := ""
	if split > 0 && split < len(words) {
		first = strings.Join(words[:split], " ")
		second = strings.Join(words[split:], " ")
	}

	return terminate(capitalize(first)), terminate(capitalize(second))
}

// substitute looks up every distinct complex word in the substitution
// table and emits one atomic (searchText, replaceWith) suggestion each.
func (g *Generator) substitute(text string) []models.Suggestion {
	var suggestions []models.Suggestion
	seen := make(map[string]bool)

	for _, word := range textstats.Words(text) {
		clean := textstats.CleanWord(word)
		if seen[clean] {
			continue
		}
		simple, ok := g.substitutions[clean]
		if !ok || g.stats.SyllableCount(word) < 3 {
			continue
		}
		seen[clean] = true

		search := strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		replace := simple
		if search != "" && unicode.IsUpper([]rune(search)[0]) {
			replace = capitalize(simple)
		}

		suggestions = append(suggestions, models.Suggestion{
			Type:        TypeWordChoice,
			Severity:    models.SeverityWarning,
			Location:    "overall",
			Message:     fmt.Sprintf("Replace %q with %q", search, replace),
			Detail:      "A plainer word lowers the grade without losing the point.",
			SearchText:  search,
			ReplaceWith: replace,
			Priority:    models.PriorityMedium,
		})
		if len(suggestions) >= maxSubstitutions {
			break
		}
	}

	return suggestions
}

// passiveVoice reports passive constructions as one informational
// suggestion, independent of the grade-level branch.
func (g *Generator) passiveVoice(text string, stats models.TextStatistics) *models.Suggestion {
	count := countPassive(text)
	if count == 0 {
		return nil
	}

	density := 0.0
	if stats.SentenceCount > 0 {
		density = float64(count) / float64(stats.SentenceCount)
	}

	return &models.Suggestion{
		Type:     TypePassiveVoice,
		Severity: models.SeverityInfo,
		Location: "overall",
		Message:  fmt.Sprintf("Found %d passive construction(s)", count),
		Detail: fmt.Sprintf("Passive density is %.2f per sentence. Active voice names who acts: \"we passed the bill\", not \"the bill was passed\".",
			density),
		Priority: models.PriorityLow,
	}
}

var auxiliaries = map[string]bool{
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
}

var irregularParticiples = map[string]bool{
	"begun": true, "broken": true, "brought": true, "built": true,
	"chosen": true, "done": true, "driven": true, "given": true,
	"held": true, "kept": true, "known": true, "left": true,
	"lost": true, "made": true, "met": true, "paid": true,
	"put": true, "said": true, "seen": true, "sent": true,
	"shown": true, "spent": true, "taken": true, "told": true,
	"won": true, "written": true,
}

// countPassive counts auxiliary+participle bigrams. A word ending in
// "ed" or a known irregular participle after a form of "to be" counts.
func countPassive(text string) int {
	words := textstats.Words(text)
	count := 0
	for i := 0; i+1 < len(words); i++ {
		if !auxiliaries[textstats.CleanWord(words[i])] {
			continue
		}
		next := textstats.CleanWord(words[i+1])
		if strings.HasSuffix(next, "ed") || irregularParticiples[next] {
			count++
		}
	}
	return count
}

func styleTips() []models.Suggestion {
	return []models.Suggestion{
		{
			Type:     TypeStyleTip,
			Severity: models.SeverityInfo,
			Location: "overall",
			Message:  "Use active voice",
			Detail:   "Say who did what. Voters respond to actors, not abstractions.",
			Priority: models.PriorityLow,
		},
		{
			Type:     TypeStyleTip,
			Severity: models.SeverityInfo,
			Location: "overall",
			Message:  "One idea per sentence",
			Detail:   "When a sentence makes two points, give each its own sentence.",
			Priority: models.PriorityLow,
		},
		{
			Type:     TypeStyleTip,
			Severity: models.SeverityInfo,
			Location: "overall",
			Message:  "Use concrete numbers",
			Detail:   "\"40,000 families\" lands harder than \"many families\".",
			Priority: models.PriorityLow,
		},
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// terminate ensures a sentence fragment ends with terminal punctuation.
func terminate(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), ",;: ")
	if s == "" {
		return s
	}
	last := s[len(s)-1]
	if last != '.' && last != '!' && last != '?' {
		s += "."
	}
	return s
}
