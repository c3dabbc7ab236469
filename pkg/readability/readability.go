// Package readability applies five published grade-level formulas plus
// Flesch Reading Ease to text statistics and compares the averaged grade
// against a per-content-type target.
package readability

import (
	"math"

	"github.com/polisapp/copydesk/models"
	"github.com/polisapp/copydesk/pkg/textstats"
)

// Override carries per-call target overrides. Nil fields defer to the
// stored configuration, which itself defers to the built-in defaults.
type Override struct {
	TargetGrade *float64
	Tolerance   *float64
}

// Scorer applies the readability formulas. Construct one per
// configuration and share it freely; scoring is reentrant.
type Scorer struct {
	cfg   *models.Config
	stats *textstats.Analyzer
}

func NewScorer(cfg *models.Config, stats *textstats.Analyzer) *Scorer {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	if stats == nil {
		stats = textstats.NewAnalyzer()
	}
	return &Scorer{cfg: cfg, stats: stats}
}

// Score computes the full readability report for one text against the
// target for the given content type. Empty input yields a zero-valued
// report carrying an explicit issue rather than an error.
func (s *Scorer) Score(text, contentType string, override *Override) models.ReadabilityReport {
	target := s.cfg.TargetFor(contentType).Target
	tolerance := s.cfg.Tolerance
	if override != nil {
		if override.TargetGrade != nil {
			target = *override.TargetGrade
		}
		if override.Tolerance != nil {
			tolerance = *override.Tolerance
		}
	}

	stats := s.stats.Analyze(text)
	report := models.ReadabilityReport{
		Stats:       stats,
		TargetGrade: target,
	}

	if stats.WordCount == 0 {
		report.Issues = append(report.Issues, "no content to analyze")
		report.Difficulty = models.DifficultyVeryEasy
		report.Deviation = round1(0 - target)
		return report
	}

	report.FleschKincaid = FleschKincaid(stats)
	report.GunningFog = GunningFog(stats)
	report.SMOG = SMOG(stats)
	report.ColemanLiau = ColemanLiau(stats)
	report.ARI = ARI(stats)
	report.ReadingEase = ReadingEase(stats)

	// Average of the five grade-scale formulas only; reading ease is a
	// different scale and never enters the mean.
	report.AverageGrade = round1((report.FleschKincaid +
		report.GunningFog +
		report.SMOG +
		report.ColemanLiau +
		report.ARI) / 5)
	report.Deviation = round1(report.AverageGrade - target)
	report.Difficulty = DifficultyLabel(report.AverageGrade)
	report.OnTarget = math.Abs(report.AverageGrade-target) <= tolerance

	return report
}

// FleschKincaid is the Flesch-Kincaid grade level, clamped at zero.
func FleschKincaid(st models.TextStatistics) float64 {
	if st.SentenceCount == 0 || st.WordCount == 0 {
		return 0
	}
	grade := 0.39*st.AvgSentenceLength + 11.8*st.AvgSyllablesPerWord - 15.59
	return math.Max(0, grade)
}

// GunningFog is the Gunning Fog index.
func GunningFog(st models.TextStatistics) float64 {
	if st.SentenceCount == 0 || st.WordCount == 0 {
		return 0
	}
	complexShare := 100 * float64(st.ComplexWordCount) / float64(st.WordCount)
	return 0.4 * (st.AvgSentenceLength + complexShare)
}

// SMOG is the SMOG index. Texts under 30 sentences use the approximation
// that scales the polysyllable count to a 30-sentence sample; the
// unadjusted published formula applies above that. The short-text branch
// is an empirically chosen workaround, not a standard variant.
func SMOG(st models.TextStatistics) float64 {
	if st.SentenceCount == 0 {
		return 0
	}
	poly := float64(st.PolysyllableCount)
	if st.SentenceCount < 30 {
		poly *= 30.0 / float64(st.SentenceCount)
	}
	return 1.0430*math.Sqrt(poly) + 3.1291
}

// ColemanLiau is the Coleman-Liau index, clamped at zero.
func ColemanLiau(st models.TextStatistics) float64 {
	if st.WordCount == 0 {
		return 0
	}
	l := 100 * float64(st.LetterCount) / float64(st.WordCount)
	s := 100 * float64(st.SentenceCount) / float64(st.WordCount)
	return math.Max(0, 0.0588*l-0.296*s-15.8)
}

// ARI is the Automated Readability Index, clamped at zero.
func ARI(st models.TextStatistics) float64 {
	if st.SentenceCount == 0 || st.WordCount == 0 {
		return 0
	}
	charsPerWord := float64(st.LetterCount) / float64(st.WordCount)
	wordsPerSentence := float64(st.WordCount) / float64(st.SentenceCount)
	return math.Max(0, 4.71*charsPerWord+0.5*wordsPerSentence-21.43)
}

// ReadingEase is the Flesch Reading Ease score, clamped to [0,100].
// Higher means easier; it is reported alongside the grades but excluded
// from the grade average.
func ReadingEase(st models.TextStatistics) float64 {
	if st.SentenceCount == 0 || st.WordCount == 0 {
		return 0
	}
	ease := 206.835 - 1.015*st.AvgSentenceLength - 84.6*st.AvgSyllablesPerWord
	return math.Min(100, math.Max(0, ease))
}

// DifficultyLabel buckets an averaged grade into an editorial label.
func DifficultyLabel(grade float64) string {
	switch {
	case grade <= 6:
		return models.DifficultyVeryEasy
	case grade <= 8:
		return models.DifficultyEasy
	case grade <= 10:
		return models.DifficultyModerate
	case grade <= 13:
		return models.DifficultyDifficult
	case grade <= 16:
		return models.DifficultyChallenging
	default:
		return models.DifficultyVeryDifficult
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
