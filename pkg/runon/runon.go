// Package runon flags run-on sentences with three independent structural
// signals: sheer length, coordination overload, and subordination
// overload. Any one signal firing marks the sentence; details from every
// fired signal are aggregated.
package runon

import (
	"fmt"
	"strings"

	"github.com/polisapp/copydesk/models"
	"github.com/polisapp/copydesk/pkg/textstats"
)

var coordinatingConjunctions = map[string]bool{
	"and": true, "but": true, "or": true, "nor": true,
	"for": true, "so": true, "yet": true,
}

var subordinatingConjunctions = map[string]bool{
	"because": true, "although": true, "since": true, "while": true,
	"when": true, "if": true, "unless": true, "until": true,
	"before": true, "after": true, "though": true, "whereas": true,
	"as": true,
}

var relativePronouns = map[string]bool{
	"who": true, "which": true, "that": true,
	"where": true, "whose": true, "whom": true,
}

// Checker analyzes sentence structure against configured thresholds. The
// strict variant applies the two-tier word thresholds used for copy that
// will be read aloud.
type Checker struct {
	thresholds models.RunOnThresholds
	strict     bool
}

func NewChecker(thresholds models.RunOnThresholds) *Checker {
	return &Checker{thresholds: thresholds}
}

// NewStrictChecker returns the speech/voice variant: word counts at the
// warn threshold flag a warning, at the critical threshold an error.
func NewStrictChecker(thresholds models.RunOnThresholds) *Checker {
	return &Checker{thresholds: thresholds, strict: true}
}

// Check examines every sentence in the text and returns one record per
// sentence, flagged or not.
func (c *Checker) Check(text string) []models.SentenceRecord {
	sentences := textstats.Sentences(text)
	records := make([]models.SentenceRecord, 0, len(sentences))
	for i, sentence := range sentences {
		records = append(records, c.checkSentence(i, sentence))
	}
	return records
}

// RunOns returns only the flagged sentences.
func (c *Checker) RunOns(text string) []models.SentenceRecord {
	var flagged []models.SentenceRecord
	for _, rec := range c.Check(text) {
		if rec.IsRunOn {
			flagged = append(flagged, rec)
		}
	}
	return flagged
}

func (c *Checker) checkSentence(index int, sentence string) models.SentenceRecord {
	words := textstats.Words(sentence)

	rec := models.SentenceRecord{
		Index:            index,
		Sentence:         sentence,
		WordCount:        len(words),
		ClauseIndicators: strings.Count(sentence, ","),
	}

	for _, word := range words {
		clean := textstats.CleanWord(word)
		if coordinatingConjunctions[clean] {
			rec.ConjunctionCount++
		}
		if subordinatingConjunctions[clean] || relativePronouns[clean] {
			rec.ClauseIndicators++
		}
	}

	var details []string
	severity := ""

	if c.strict {
		switch {
		case rec.WordCount >= c.thresholds.StrictCriticalWords:
			details = append(details, fmt.Sprintf(
				"%d words is too long to deliver in one breath (limit %d)",
				rec.WordCount, c.thresholds.StrictCriticalWords))
			severity = models.SeverityError
		case rec.WordCount >= c.thresholds.StrictWarnWords:
			details = append(details, fmt.Sprintf(
				"%d words is hard to deliver aloud (aim under %d)",
				rec.WordCount, c.thresholds.StrictWarnWords))
			severity = models.SeverityWarning
		}
	} else if rec.WordCount > c.thresholds.MaxWords {
		details = append(details, fmt.Sprintf(
			"%d words exceeds the %d-word limit",
			rec.WordCount, c.thresholds.MaxWords))
		severity = models.SeverityWarning
	}

	if rec.ConjunctionCount >= c.thresholds.MaxConjunctions {
		details = append(details, fmt.Sprintf(
			"%d coordinating conjunctions chain too many clauses together (limit %d)",
			rec.ConjunctionCount, c.thresholds.MaxConjunctions-1))
		if severity == "" {
			severity = models.SeverityWarning
		}
	}

	if rec.ClauseIndicators >= c.thresholds.MaxClauseIndicators {
		details = append(details, fmt.Sprintf(
			"%d clause indicators (commas, subordinators, relative pronouns) pile up too many ideas (limit %d)",
			rec.ClauseIndicators, c.thresholds.MaxClauseIndicators-1))
		if severity == "" {
			severity = models.SeverityWarning
		}
	}

	if len(details) > 0 {
		rec.IsRunOn = true
		rec.Severity = severity
		rec.Detail = strings.Join(details, "; ")
	}

	return rec
}

// IsCoordinatingConjunction reports whether a cleaned word is one of the
// seven coordinating conjunctions. Exposed for the suggestion generator's
// sentence splitting.
func IsCoordinatingConjunction(word string) bool {
	return coordinatingConjunctions[textstats.CleanWord(word)]
}
