// Package analyze implements the analyze and runon CLI commands.
package analyze

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/polisapp/copydesk/internal/common"
	"github.com/polisapp/copydesk/models"
	dbpkg "github.com/polisapp/copydesk/pkg/db"
	"github.com/polisapp/copydesk/pkg/readability"
	"github.com/polisapp/copydesk/pkg/runon"
	"github.com/polisapp/copydesk/pkg/styleprofile"
	"github.com/polisapp/copydesk/pkg/suggest"
	"github.com/polisapp/copydesk/pkg/textstats"
	"github.com/urfave/cli/v2"
)

// Report is the combined analyze output: readability, structure,
// suggestions, and (when a speaker is given) style deviations.
type Report struct {
	ContentType     string                   `json:"content_type" yaml:"content_type"`
	Readability     models.ReadabilityReport `json:"readability" yaml:"readability"`
	RunOns          []models.SentenceRecord  `json:"run_ons,omitempty" yaml:"run_ons,omitempty"`
	Suggestions     []models.Suggestion      `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	StyleDeviations []models.StyleDeviation  `json:"style_deviations,omitempty" yaml:"style_deviations,omitempty"`
}

func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	text, err := common.ReadInput(c)
	if err != nil {
		return err
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		logger.Warn("Database unavailable; skipping stored settings", "error", err)
		database = nil
	} else {
		defer database.Close()
	}

	cfg := common.LoadEngineConfig(c, logger, database)
	contentType := c.String("type")

	var override *readability.Override
	if c.IsSet("target") {
		target := c.Float64("target")
		override = &readability.Override{TargetGrade: &target}
	}
	if c.IsSet("tolerance") {
		tolerance := c.Float64("tolerance")
		if override == nil {
			override = &readability.Override{}
		}
		override.Tolerance = &tolerance
	}

	stats := textstats.NewAnalyzer()
	scorer := readability.NewScorer(cfg, stats)

	report := Report{ContentType: contentType}
	report.Readability = scorer.Score(text, contentType, override)
	logger.Info("Scored readability",
		"content_type", contentType,
		"average_grade", report.Readability.AverageGrade,
		"target", report.Readability.TargetGrade,
		"on_target", report.Readability.OnTarget,
	)

	checker := runon.NewChecker(cfg.RunOn)
	if c.Bool("strict") {
		checker = runon.NewStrictChecker(cfg.RunOn)
	}
	report.RunOns = checker.RunOns(text)

	if !report.Readability.OnTarget {
		generator := suggest.NewGenerator(cfg, stats)
		report.Suggestions = generator.Generate(report.Readability, text)
	}

	if speaker := c.String("speaker"); speaker != "" {
		deviations, err := checkStyle(database, speaker, text, stats)
		if err != nil {
			logger.Warn("Style check skipped", "speaker", speaker, "error", err)
		} else {
			report.StyleDeviations = deviations
		}
	}

	if c.Bool("save") {
		if err := saveRun(database, contentType, &report); err != nil {
			logger.Warn("Failed to save analysis", "error", err)
		}
	}

	return common.WriteReport(os.Stdout, report, c.String("format"))
}

func RunOnAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	text, err := common.ReadInput(c)
	if err != nil {
		return err
	}

	// Stored settings carry grade targets only; the run-on thresholds
	// come from the defaults and the config file, so no database here.
	cfg := common.LoadEngineConfig(c, logger, nil)
	checker := runon.NewChecker(cfg.RunOn)
	if c.Bool("strict") {
		checker = runon.NewStrictChecker(cfg.RunOn)
	}

	records := checker.Check(text)
	flagged := 0
	for _, rec := range records {
		if rec.IsRunOn {
			flagged++
		}
	}
	logger.Info("Checked sentence structure", "sentences", len(records), "flagged", flagged)

	if c.Bool("all") {
		return common.WriteReport(os.Stdout, records, c.String("format"))
	}
	runOns := records[:0]
	for _, rec := range records {
		if rec.IsRunOn {
			runOns = append(runOns, rec)
		}
	}
	return common.WriteReport(os.Stdout, runOns, c.String("format"))
}

// checkStyle loads the speaker's corpus and runs the consistency check.
func checkStyle(database *dbpkg.DB, speaker, text string, stats *textstats.Analyzer) ([]models.StyleDeviation, error) {
	if database == nil {
		return nil, fmt.Errorf("database unavailable")
	}

	corpus, err := database.QuotesForSpeaker(speaker)
	if err != nil {
		return nil, err
	}

	profiler := styleprofile.NewProfiler(stats)
	profile := profiler.BuildProfile(corpus)
	return profiler.CheckConsistency(text, profile), nil
}

func saveRun(database *dbpkg.DB, contentType string, report *Report) error {
	if database == nil {
		return fmt.Errorf("database unavailable")
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = database.InsertAnalysis(dbpkg.AnalysisRun{
		ContentType:  contentType,
		TargetGrade:  report.Readability.TargetGrade,
		AverageGrade: report.Readability.AverageGrade,
		OnTarget:     report.Readability.OnTarget,
		ReportJSON:   string(reportJSON),
	})
	return err
}
