// Package models defines the shared data structures produced and consumed
// by the scoring engine: text statistics, readability reports, suggestions,
// style profiles, quality results, and engine configuration.
package models

// TextStatistics holds the aggregate counters derived once from one input
// text. It is computed fresh per call and never mutated afterwards.
type TextStatistics struct {
	WordCount           int     `json:"word_count" yaml:"word_count"`
	SentenceCount       int     `json:"sentence_count" yaml:"sentence_count"`
	SyllableCount       int     `json:"syllable_count" yaml:"syllable_count"`
	LetterCount         int     `json:"letter_count" yaml:"letter_count"`
	ComplexWordCount    int     `json:"complex_word_count" yaml:"complex_word_count"`
	PolysyllableCount   int     `json:"polysyllable_count" yaml:"polysyllable_count"`
	AvgWordLength       float64 `json:"avg_word_length" yaml:"avg_word_length"`
	AvgSentenceLength   float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word" yaml:"avg_syllables_per_word"`
	LongestSentence     int     `json:"longest_sentence" yaml:"longest_sentence"`
	ShortestSentence    int     `json:"shortest_sentence" yaml:"shortest_sentence"`
}

// SentenceRecord describes one sentence and the structural signals that
// fired on it. Detail aggregates the message from every signal that fired,
// not just the first.
type SentenceRecord struct {
	Index            int    `json:"index" yaml:"index"`
	Sentence         string `json:"sentence" yaml:"sentence"`
	WordCount        int    `json:"word_count" yaml:"word_count"`
	ConjunctionCount int    `json:"conjunction_count" yaml:"conjunction_count"`
	ClauseIndicators int    `json:"clause_indicators" yaml:"clause_indicators"`
	IsRunOn          bool   `json:"is_run_on" yaml:"is_run_on"`
	Severity         string `json:"severity,omitempty" yaml:"severity,omitempty"`
	Detail           string `json:"detail,omitempty" yaml:"detail,omitempty"`
}
