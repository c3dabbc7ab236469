// Package score implements the weighted quality score CLI command.
package score

import (
	"fmt"
	"os"

	"github.com/polisapp/copydesk/internal/common"
	"github.com/polisapp/copydesk/models"
	dbpkg "github.com/polisapp/copydesk/pkg/db"
	"github.com/polisapp/copydesk/pkg/quality"
	"github.com/polisapp/copydesk/pkg/styleprofile"
	"github.com/polisapp/copydesk/pkg/textstats"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ScoreAction(c *cli.Context) error {
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
	assignmentType := c.String("type")

	ctx := &quality.CheckContext{
		AssignmentType: assignmentType,
		TargetGrade:    c.Float64("target"),
		Tolerance:      c.Float64("tolerance"),
	}

	if briefPath := c.String("brief"); briefPath != "" {
		brief, err := loadBrief(briefPath)
		if err != nil {
			return err
		}
		ctx.Brief = brief
	}

	stats := textstats.NewAnalyzer()

	if speaker := c.String("speaker"); speaker != "" {
		profile, err := loadProfile(database, speaker, stats)
		if err != nil {
			logger.Warn("Style profile unavailable", "speaker", speaker, "error", err)
		} else {
			ctx.StyleProfile = profile
		}
	}

	registry := quality.DefaultRegistry(cfg, stats)
	scorer := quality.NewScorer(registry, cfg.Criteria)

	result, err := scorer.Score(text, assignmentType, ctx)
	if err != nil {
		// Configuration errors still produce a degraded result; report
		// both so the caller sees the neutral score is not a pass.
		logger.Error("Scoring degraded", "error", err)
	}

	logger.Info("Scored quality",
		"assignment_type", assignmentType,
		"overall_score", result.OverallScore,
		"readiness", result.Readiness,
		"critical_issues", len(result.CriticalIssues),
	)

	if werr := common.WriteReport(os.Stdout, result, c.String("format")); werr != nil {
		return werr
	}
	return err
}

func loadBrief(path string) (*models.Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brief: %w", err)
	}
	var brief models.Brief
	if err := yaml.Unmarshal(data, &brief); err != nil {
		return nil, fmt.Errorf("failed to parse brief: %w", err)
	}
	return &brief, nil
}

func loadProfile(database *dbpkg.DB, speaker string, stats *textstats.Analyzer) (*models.StyleProfile, error) {
	if database == nil {
		return nil, fmt.Errorf("database unavailable")
	}

	corpus, err := database.QuotesForSpeaker(speaker)
	if err != nil {
		return nil, err
	}

	profile := styleprofile.NewProfiler(stats).BuildProfile(corpus)
	return &profile, nil
}
