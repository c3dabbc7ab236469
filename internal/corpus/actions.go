// Package corpus implements the reference-corpus CLI commands: importing
// speech transcripts from the web and managing stored quotes.
package corpus

import (
	"fmt"
	"strings"

	"github.com/polisapp/copydesk/internal/common"
	"github.com/polisapp/copydesk/pkg/fetcher"
	"github.com/polisapp/copydesk/pkg/transcript"
	"github.com/urfave/cli/v2"
)

// ImportAction fetches one or more transcript pages and stores each
// extracted paragraph as a reference quote for the speaker.
func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	speaker := c.String("speaker")
	if speaker == "" {
		return fmt.Errorf("speaker name is required")
	}
	urlsStr := c.String("urls")
	if urlsStr == "" {
		return fmt.Errorf("no URLs provided via --urls flag")
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	speakerID, err := database.UpsertSpeaker(speaker)
	if err != nil {
		return err
	}

	f := fetcher.NewFetcher()
	extractor := transcript.NewExtractor()

	imported := 0
	for _, rawURL := range strings.Split(urlsStr, ",") {
		rawURL = strings.TrimSpace(rawURL)
		if rawURL == "" {
			continue
		}
		logger.Info("Fetching transcript", "url", rawURL)

		html, err := f.GetHTML(rawURL)
		if err != nil {
			logger.Error("Failed to fetch page", "url", rawURL, "error", err)
			continue
		}

		t, err := extractor.Extract(rawURL, html)
		if err != nil {
			logger.Error("Failed to extract transcript", "url", rawURL, "error", err)
			continue
		}

		for _, paragraph := range t.Paragraphs {
			if _, err := database.InsertQuote(speakerID, paragraph, rawURL); err != nil {
				logger.Error("Failed to store quote", "url", rawURL, "error", err)
				continue
			}
			imported++
		}
		logger.Info("Imported transcript",
			"url", rawURL,
			"title", t.Title,
			"paragraphs", len(t.Paragraphs),
			"words", t.WordCount,
		)
	}

	fmt.Printf("Imported %d quote(s) for %s\n", imported, speaker)
	return nil
}

// AddAction stores one quote passed directly on the command line.
func AddAction(c *cli.Context) error {
	speaker := c.String("speaker")
	if speaker == "" {
		return fmt.Errorf("speaker name is required")
	}
	text, err := common.ReadInput(c)
	if err != nil {
		return err
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	speakerID, err := database.UpsertSpeaker(speaker)
	if err != nil {
		return err
	}
	if _, err := database.InsertQuote(speakerID, strings.TrimSpace(text), c.String("source")); err != nil {
		return err
	}

	fmt.Printf("Added quote for %s\n", speaker)
	return nil
}

// ShowAction prints one speaker's stored quotes.
func ShowAction(c *cli.Context) error {
	speaker := c.String("speaker")
	if speaker == "" {
		return fmt.Errorf("speaker name is required")
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	quotes, err := database.QuotesForSpeaker(speaker)
	if err != nil {
		return err
	}
	if len(quotes) == 0 {
		fmt.Printf("No quotes found for %s\n", speaker)
		return nil
	}

	for i, q := range quotes {
		fmt.Printf("%d. %s\n\n", i+1, q)
	}
	fmt.Printf("Total: %d quote(s) for %s\n", len(quotes), speaker)
	return nil
}

// ListAction prints every speaker and corpus size.
func ListAction(c *cli.Context) error {
	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	speakers, err := database.ListSpeakers()
	if err != nil {
		return err
	}
	if len(speakers) == 0 {
		fmt.Println("No speakers found")
		return nil
	}

	fmt.Printf("%-6s %-30s %-8s %-20s\n", "ID", "Speaker", "Quotes", "Created")
	fmt.Println(strings.Repeat("-", 70))
	for _, s := range speakers {
		fmt.Printf("%-6d %-30s %-8d %-20s\n",
			s.SpeakerID, s.Name, s.QuoteCount, s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("\nTotal: %d speaker(s)\n", len(speakers))
	return nil
}
