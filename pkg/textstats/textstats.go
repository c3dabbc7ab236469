// Package textstats tokenizes raw text into sentences and words and
// derives the aggregate counters every other scoring component consumes.
package textstats

import (
	"strings"
	"sync"
	"unicode"

	"github.com/polisapp/copydesk/models"
)

// Analyzer computes text statistics. The only mutable state is the
// word-to-syllable memo cache; clearing it never affects correctness.
type Analyzer struct {
	mu        sync.Mutex
	syllables map[string]int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		syllables: make(map[string]int),
	}
}

// Analyze derives the full set of counters for one text. Empty or
// whitespace-only input yields a zero-valued result, never an error.
func (a *Analyzer) Analyze(text string) models.TextStatistics {
	var stats models.TextStatistics
	if strings.TrimSpace(text) == "" {
		return stats
	}

	sentences := Sentences(text)
	words := Words(text)

	stats.SentenceCount = len(sentences)
	stats.WordCount = len(words)

	totalLetters := 0
	totalWordLen := 0
	for _, word := range words {
		clean := CleanWord(word)
		totalWordLen += len(clean)
		for _, r := range word {
			if unicode.IsLetter(r) {
				totalLetters++
			}
		}

		syl := a.SyllableCount(word)
		stats.SyllableCount += syl
		if syl >= 3 {
			stats.PolysyllableCount++
			stats.ComplexWordCount++
		}
	}
	stats.LetterCount = totalLetters

	if stats.WordCount > 0 {
		stats.AvgWordLength = float64(totalWordLen) / float64(stats.WordCount)
		stats.AvgSyllablesPerWord = float64(stats.SyllableCount) / float64(stats.WordCount)
	}
	if stats.SentenceCount > 0 {
		stats.AvgSentenceLength = float64(stats.WordCount) / float64(stats.SentenceCount)
	}

	for i, sentence := range sentences {
		n := len(Words(sentence))
		if n > stats.LongestSentence {
			stats.LongestSentence = n
		}
		if i == 0 || n < stats.ShortestSentence {
			stats.ShortestSentence = n
		}
	}

	return stats
}

// Sentences splits text on terminal punctuation followed by a capital
// letter. Abbreviations ("Sen.", "U.S.") are a known limitation and are
// not handled specially.
func Sentences(text string) []string {
	text = strings.TrimSpace(normalizeQuotes(text))
	if text == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// Swallow a run of terminal punctuation ("?!", "...").
		end := i
		for end+1 < len(runes) && isTerminal(runes[end+1]) {
			end++
		}
		// Look past whitespace for the start of the next sentence.
		next := end + 1
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next < len(runes) && !unicode.IsUpper(runes[next]) {
			i = end
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = next
		i = end
	}

	if start < len(runes) {
		if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
			sentences = append(sentences, rest)
		}
	}

	return sentences
}

// Words splits text on whitespace after quote normalization, dropping
// tokens that contain no letters or digits at all.
func Words(text string) []string {
	fields := strings.Fields(normalizeQuotes(text))
	words := fields[:0]
	for _, f := range fields {
		if CleanWord(f) != "" {
			words = append(words, f)
		}
	}
	return words
}

// SyllableCount counts syllables with a cheap heuristic: short words are
// one syllable; a trailing silent "e" (or "es"/"ed" suffix) is stripped;
// the remainder counts one syllable per contiguous vowel run, minimum one.
// Deliberately approximate: it trades linguistic precision for speed and
// determinism.
func (a *Analyzer) SyllableCount(word string) int {
	clean := CleanWord(word)
	if clean == "" {
		return 0
	}

	a.mu.Lock()
	if n, ok := a.syllables[clean]; ok {
		a.mu.Unlock()
		return n
	}
	a.mu.Unlock()

	n := countSyllables(clean)

	a.mu.Lock()
	a.syllables[clean] = n
	a.mu.Unlock()

	return n
}

// ClearCache drops the syllable memo cache. Purely a performance reset.
func (a *Analyzer) ClearCache() {
	a.mu.Lock()
	a.syllables = make(map[string]int)
	a.mu.Unlock()
}

func countSyllables(word string) int {
	if len(word) <= 3 {
		return 1
	}

	switch {
	case strings.HasSuffix(word, "es") && !strings.HasSuffix(word, "ses") && !strings.HasSuffix(word, "ies"):
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "ed") && !hasVowelBefore(word, len(word)-2):
		// "-ed" that follows a consonant cluster ("walked") is silent;
		// "agreed" keeps its vowel run.
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le"):
		word = word[:len(word)-1]
	}

	runs := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			runs++
		}
		prevVowel = v
	}
	if runs == 0 {
		runs = 1
	}
	return runs
}

func hasVowelBefore(word string, idx int) bool {
	if idx <= 0 {
		return false
	}
	return isVowel(rune(word[idx-1]))
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouy", r)
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// CleanWord lowercases a token and strips everything that is not a
// letter, digit, or internal apostrophe/hyphen.
func CleanWord(word string) string {
	word = strings.ToLower(normalizeQuotes(word))
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "'-")
}

// normalizeQuotes maps typographic quote characters to their ASCII
// equivalents so contraction and word detection see one form.
var quoteReplacer = strings.NewReplacer(
	"‘", "'", // left single
	"’", "'", // right single
	"“", `"`, // left double
	"”", `"`, // right double
)

func normalizeQuotes(text string) string {
	return quoteReplacer.Replace(text)
}
