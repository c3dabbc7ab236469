// Package styleprofile builds a statistical fingerprint of one speaker
// from their historical quotes and flags new passages that deviate from
// it. An empty reference corpus disables the check entirely.
package styleprofile

import (
	"fmt"
	"math"
	"strings"

	"github.com/polisapp/copydesk/models"
	"github.com/polisapp/copydesk/pkg/textstats"
)

// defaultSentenceStdDev stands in when the corpus has no variance data,
// e.g. a single reference quote.
const defaultSentenceStdDev = 10.0

// neutralFormality is the midpoint the formality heuristic starts from.
const neutralFormality = 5.0

var formalTransitions = []string{
	"furthermore", "moreover", "consequently", "therefore",
	"nevertheless", "accordingly", "additionally", "thus",
}

var casualWords = []string{
	"gonna", "wanna", "gotta", "kinda", "sorta",
	"yeah", "stuff", "guys", "awesome", "cool",
}

var firstPersonPronouns = map[string]bool{
	"i": true, "i'm": true, "i've": true, "i'll": true, "i'd": true,
	"me": true, "my": true, "mine": true, "myself": true,
	"we": true, "we're": true, "we've": true, "we'll": true, "we'd": true,
	"our": true, "ours": true, "us": true, "ourselves": true,
}

var contractionSuffixes = []string{"'t", "'s", "'re", "'ve", "'ll", "'d", "'m"}

// Profiler derives style vectors and profiles.
type Profiler struct {
	stats *textstats.Analyzer
}

func NewProfiler(stats *textstats.Analyzer) *Profiler {
	if stats == nil {
		stats = textstats.NewAnalyzer()
	}
	return &Profiler{stats: stats}
}

// Vector computes the per-text style measurement.
func (p *Profiler) Vector(text string) models.StyleVector {
	words := textstats.Words(text)
	sentences := textstats.Sentences(text)

	var v models.StyleVector
	if len(words) == 0 {
		return v
	}

	v.AvgSentenceLength = float64(len(words))
	if len(sentences) > 0 {
		v.AvgSentenceLength = float64(len(words)) / float64(len(sentences))
	}

	totalLen := 0
	contractions := 0
	firstPerson := 0
	for _, word := range words {
		clean := textstats.CleanWord(word)
		totalLen += len(clean)
		if isContraction(clean) {
			contractions++
		}
		if firstPersonPronouns[clean] {
			firstPerson++
		}
	}
	v.AvgWordLength = float64(totalLen) / float64(len(words))
	v.ContractionRate = float64(contractions) / float64(len(words))
	v.FirstPersonRate = float64(firstPerson) / float64(len(words))
	v.HasExclamation = strings.Contains(text, "!")
	v.Formality = formality(text, contractions, v.HasExclamation)

	return v
}

// BuildProfile aggregates one style vector per reference text into a
// mean/stddev profile. An empty corpus yields a zero-sample profile.
func (p *Profiler) BuildProfile(references []string) models.StyleProfile {
	var profile models.StyleProfile
	if len(references) == 0 {
		return profile
	}

	var (
		sentenceLengths []float64
		formalities     []float64
		contractions    []float64
		firstPersons    []float64
		wordLengths     []float64
		exclaiming      int
	)
	for _, ref := range references {
		v := p.Vector(ref)
		sentenceLengths = append(sentenceLengths, v.AvgSentenceLength)
		formalities = append(formalities, v.Formality)
		contractions = append(contractions, v.ContractionRate)
		firstPersons = append(firstPersons, v.FirstPersonRate)
		wordLengths = append(wordLengths, v.AvgWordLength)
		if v.HasExclamation {
			exclaiming++
		}
	}

	profile.SampleCount = len(references)
	profile.AvgSentenceLength, profile.SentenceLengthStdDev = meanStdDev(sentenceLengths)
	profile.Formality, profile.FormalityStdDev = meanStdDev(formalities)
	profile.ContractionRate, profile.ContractionRateStdDev = meanStdDev(contractions)
	profile.FirstPersonRate, profile.FirstPersonRateStdDev = meanStdDev(firstPersons)
	profile.AvgWordLength, profile.AvgWordLengthStdDev = meanStdDev(wordLengths)
	profile.ExclamationRate = float64(exclaiming) / float64(len(references))

	return profile
}

// CheckConsistency compares a new text against a profile dimension by
// dimension using fixed thresholds. Three or more deviations add one
// combined authenticity warning. A zero-sample profile short-circuits.
func (p *Profiler) CheckConsistency(text string, profile models.StyleProfile) []models.StyleDeviation {
	if profile.SampleCount == 0 {
		return nil
	}

	v := p.Vector(text)
	var deviations []models.StyleDeviation

	stdDev := profile.SentenceLengthStdDev
	if stdDev == 0 {
		stdDev = defaultSentenceStdDev
	}
	if diff := math.Abs(v.AvgSentenceLength - profile.AvgSentenceLength); diff > 2*stdDev {
		deviations = append(deviations, models.StyleDeviation{
			Aspect: models.AspectSentenceLength,
			Message: fmt.Sprintf("Sentences average %.1f words; this speaker averages %.1f",
				v.AvgSentenceLength, profile.AvgSentenceLength),
			Severity:  models.SeverityInfo,
			Magnitude: diff,
		})
	}

	if diff := math.Abs(v.Formality - profile.Formality); diff > 2.0 {
		severity := models.SeverityInfo
		if diff > 3.0 {
			severity = models.SeverityWarning
		}
		direction := "more formal"
		if v.Formality < profile.Formality {
			direction = "less formal"
		}
		deviations = append(deviations, models.StyleDeviation{
			Aspect:    models.AspectFormality,
			Message:   fmt.Sprintf("Tone reads %s than this speaker usually sounds", direction),
			Severity:  severity,
			Magnitude: diff,
		})
	}

	if profile.ContractionRate > 0.1 {
		if diff := math.Abs(v.ContractionRate - profile.ContractionRate); diff > 0.3 {
			deviations = append(deviations, models.StyleDeviation{
				Aspect:    models.AspectContractions,
				Message:   "Contraction use does not match this speaker's voice",
				Severity:  models.SeverityInfo,
				Magnitude: diff,
			})
		}
	}

	if diff := math.Abs(v.FirstPersonRate - profile.FirstPersonRate); diff > 0.2 {
		deviations = append(deviations, models.StyleDeviation{
			Aspect:    models.AspectFirstPerson,
			Message:   "First-person usage differs from this speaker's habit",
			Severity:  models.SeverityInfo,
			Magnitude: diff,
		})
	}

	if v.HasExclamation && profile.ExclamationRate < 0.1 {
		deviations = append(deviations, models.StyleDeviation{
			Aspect:    models.AspectExclamation,
			Message:   "This speaker rarely uses exclamation marks",
			Severity:  models.SeverityInfo,
			Magnitude: 1,
		})
	} else if !v.HasExclamation && profile.ExclamationRate > 0.4 {
		deviations = append(deviations, models.StyleDeviation{
			Aspect:    models.AspectExclamation,
			Message:   "This speaker usually writes with more energy (exclamation marks)",
			Severity:  models.SeverityInfo,
			Magnitude: 1,
		})
	}

	if diff := math.Abs(v.AvgWordLength - profile.AvgWordLength); diff > 1.0 {
		severity := models.SeverityInfo
		if diff > 1.5 {
			severity = models.SeverityWarning
		}
		deviations = append(deviations, models.StyleDeviation{
			Aspect:    models.AspectVocabulary,
			Message:   "Vocabulary complexity differs from this speaker's usual word choice",
			Severity:  severity,
			Magnitude: diff,
		})
	}

	if len(deviations) >= 3 {
		deviations = append(deviations, models.StyleDeviation{
			Aspect: models.AspectOverall,
			Message: fmt.Sprintf("%d style dimensions deviate; this passage may not sound authentic to the speaker",
				len(deviations)),
			Severity:  models.SeverityWarning,
			Magnitude: float64(len(deviations)),
		})
	}

	return deviations
}

// formality scores tone on a 0-10 scale from a neutral midpoint:
// up for no contractions and formal transitions, down for casual words
// and exclamation marks.
func formality(text string, contractions int, hasExclamation bool) float64 {
	score := neutralFormality
	lower := strings.ToLower(text)

	if contractions == 0 {
		score++
	}
	for _, t := range formalTransitions {
		if containsWord(lower, t) {
			score += 0.5
		}
	}
	for _, c := range casualWords {
		if containsWord(lower, c) {
			score -= 0.5
		}
	}
	if hasExclamation {
		score--
	}

	return math.Min(10, math.Max(0, score))
}

// containsWord reports whether w appears as a whole cleaned word.
func containsWord(text, w string) bool {
	for _, word := range textstats.Words(text) {
		if textstats.CleanWord(word) == w {
			return true
		}
	}
	return false
}

func isContraction(clean string) bool {
	if !strings.Contains(clean, "'") {
		return false
	}
	for _, suffix := range contractionSuffixes {
		if strings.HasSuffix(clean, suffix) {
			return true
		}
	}
	return false
}

// meanStdDev returns the mean and population standard deviation.
func meanStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
