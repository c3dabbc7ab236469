package models

// StyleVector is the per-text stylistic measurement. One vector is derived
// for each reference quote when building a profile, and one for the new
// text under evaluation.
type StyleVector struct {
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	Formality         float64 `json:"formality" yaml:"formality"`
	ContractionRate   float64 `json:"contraction_rate" yaml:"contraction_rate"`
	FirstPersonRate   float64 `json:"first_person_rate" yaml:"first_person_rate"`
	AvgWordLength     float64 `json:"avg_word_length" yaml:"avg_word_length"`
	HasExclamation    bool    `json:"has_exclamation" yaml:"has_exclamation"`
}

// StyleProfile is the statistical fingerprint of one speaker: mean and
// standard deviation of each numeric style dimension across the reference
// corpus, plus the fraction of reference texts containing an exclamation
// mark. A zero SampleCount profile disables consistency checking.
type StyleProfile struct {
	SampleCount int `json:"sample_count" yaml:"sample_count"`

	AvgSentenceLength    float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	SentenceLengthStdDev float64 `json:"sentence_length_std_dev" yaml:"sentence_length_std_dev"`

	Formality       float64 `json:"formality" yaml:"formality"`
	FormalityStdDev float64 `json:"formality_std_dev" yaml:"formality_std_dev"`

	ContractionRate       float64 `json:"contraction_rate" yaml:"contraction_rate"`
	ContractionRateStdDev float64 `json:"contraction_rate_std_dev" yaml:"contraction_rate_std_dev"`

	FirstPersonRate       float64 `json:"first_person_rate" yaml:"first_person_rate"`
	FirstPersonRateStdDev float64 `json:"first_person_rate_std_dev" yaml:"first_person_rate_std_dev"`

	AvgWordLength       float64 `json:"avg_word_length" yaml:"avg_word_length"`
	AvgWordLengthStdDev float64 `json:"avg_word_length_std_dev" yaml:"avg_word_length_std_dev"`

	ExclamationRate float64 `json:"exclamation_rate" yaml:"exclamation_rate"`
}

// Style deviation aspects.
const (
	AspectSentenceLength = "sentence_length"
	AspectFormality      = "formality"
	AspectContractions   = "contractions"
	AspectFirstPerson    = "first_person"
	AspectExclamation    = "exclamation"
	AspectVocabulary     = "vocabulary"
	AspectOverall        = "overall"
)

// StyleDeviation is one flagged stylistic mismatch between a new text and
// a speaker's profile.
type StyleDeviation struct {
	Aspect    string  `json:"aspect" yaml:"aspect"`
	Message   string  `json:"message" yaml:"message"`
	Severity  string  `json:"severity" yaml:"severity"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
}
