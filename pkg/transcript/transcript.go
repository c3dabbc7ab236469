// Package transcript extracts speech text from fetched HTML pages for
// building a speaker's reference corpus. go-readability isolates the
// main article, goquery walks its paragraph blocks, and lingua gates
// out pages that are not English.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// ErrNotEnglish marks pages rejected by the language gate. Mixing
// languages into one style profile would poison every dimension.
var ErrNotEnglish = errors.New("page content is not English")

// minParagraphWords filters navigation scraps and photo captions out of
// the extracted paragraphs.
const minParagraphWords = 6

// Transcript is the extracted speech content of one page.
type Transcript struct {
	URL        string   `json:"url" yaml:"url"`
	Title      string   `json:"title" yaml:"title"`
	Byline     string   `json:"byline,omitempty" yaml:"byline,omitempty"`
	SiteName   string   `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
	WordCount  int      `json:"word_count" yaml:"word_count"`
}

// Text joins the extracted paragraphs into one block.
func (t *Transcript) Text() string {
	return strings.Join(t.Paragraphs, "\n\n")
}

// Extractor turns raw HTML into transcripts. Construct once; the
// language detector is expensive to build.
type Extractor struct {
	detector lingua.LanguageDetector
}

func NewExtractor() *Extractor {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Spanish, lingua.French, lingua.German).
		Build()
	return &Extractor{detector: detector}
}

// Extract isolates the main article of a page and returns its prose
// paragraphs. Pages whose detected language is not English return
// ErrNotEnglish.
func (e *Extractor) Extract(rawURL string, html []byte) (*Transcript, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(html)), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article content: %w", err)
	}

	var paragraphs []string
	wordCount := 0
	doc.Find("p,blockquote,li").Each(func(_ int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		words := len(strings.Fields(text))
		if words < minParagraphWords {
			return
		}
		paragraphs = append(paragraphs, text)
		wordCount += words
	})

	t := &Transcript{
		URL:        rawURL,
		Title:      normalizeText(article.Title),
		Byline:     article.Byline,
		SiteName:   article.SiteName,
		Paragraphs: paragraphs,
		WordCount:  wordCount,
	}

	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("no speech content found at %s", rawURL)
	}

	if lang, ok := e.detector.DetectLanguageOf(t.Text()); ok && lang != lingua.English {
		return nil, fmt.Errorf("%w: detected %s", ErrNotEnglish, lang.String())
	}

	return t, nil
}

// normalizeText trims each line and collapses the block to single-space
// separation.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
