package runon

import (
	"strings"
	"testing"

	"github.com/polisapp/copydesk/models"
)

func defaultThresholds() models.RunOnThresholds {
	return models.DefaultConfig().RunOn
}

func TestWordCountSignalAlone(t *testing.T) {
	// 36 words, no conjunctions, no clause indicators.
	text := "Voters across this state deserve leaders ready to deliver real results " +
		"on schools roads jobs healthcare housing safety wages pensions parks " +
		"libraries transit bridges clinics farms energy water broadband childcare " +
		"education opportunity progress together toward tomorrow."

	checker := NewChecker(defaultThresholds())
	records := checker.Check(text)
	if len(records) != 1 {
		t.Fatalf("got %d sentences, want 1", len(records))
	}

	rec := records[0]
	if rec.WordCount != 36 {
		t.Fatalf("WordCount = %d, want 36", rec.WordCount)
	}
	if rec.ConjunctionCount != 0 || rec.ClauseIndicators != 0 {
		t.Fatalf("expected no other signals: %+v", rec)
	}
	if !rec.IsRunOn {
		t.Error("sentence not flagged; word-count signal alone should fire")
	}
	if !strings.Contains(rec.Detail, "36 words") {
		t.Errorf("Detail = %q, want the word-count detail", rec.Detail)
	}
}

func TestConjunctionSignalAlone(t *testing.T) {
	// 20 words and 4 coordinating conjunctions, under the word limit.
	text := "We fought and we won and we organized and we marched and we delivered results to families everywhere today again."

	checker := NewChecker(defaultThresholds())
	records := checker.Check(text)
	if len(records) != 1 {
		t.Fatalf("got %d sentences, want 1", len(records))
	}

	rec := records[0]
	if rec.WordCount != 20 {
		t.Fatalf("WordCount = %d, want 20", rec.WordCount)
	}
	if rec.ConjunctionCount != 4 {
		t.Fatalf("ConjunctionCount = %d, want 4", rec.ConjunctionCount)
	}
	if !rec.IsRunOn {
		t.Error("sentence not flagged; conjunction signal alone should fire")
	}
	if !strings.Contains(rec.Detail, "coordinating conjunctions") {
		t.Errorf("Detail = %q, want the conjunction detail", rec.Detail)
	}
}

func TestCleanSentenceNotFlagged(t *testing.T) {
	text := "We knocked on doors, and voters opened them with hope."

	checker := NewChecker(defaultThresholds())
	records := checker.Check(text)
	if len(records) != 1 {
		t.Fatalf("got %d sentences, want 1", len(records))
	}

	rec := records[0]
	if rec.WordCount != 10 {
		t.Fatalf("WordCount = %d, want 10", rec.WordCount)
	}
	if rec.IsRunOn {
		t.Errorf("clean sentence flagged: %+v", rec)
	}
}

func TestClauseIndicatorSignal(t *testing.T) {
	// 3 commas + "because" + "which" = 5 clause indicators.
	text := "The plan, which we wrote last year, covers housing, because families need relief now."

	checker := NewChecker(defaultThresholds())
	rec := checker.Check(text)[0]
	if rec.ClauseIndicators < 4 {
		t.Fatalf("ClauseIndicators = %d, want at least 4", rec.ClauseIndicators)
	}
	if !rec.IsRunOn {
		t.Error("sentence not flagged; clause-indicator signal should fire")
	}
	if !strings.Contains(rec.Detail, "clause indicators") {
		t.Errorf("Detail = %q, want the clause-indicator detail", rec.Detail)
	}
}

func TestMultipleSignalsAggregateDetails(t *testing.T) {
	// Long AND conjunction-heavy: both details must appear.
	long := strings.Repeat("progress ", 33)
	text := long + "and results and hope and change."

	checker := NewChecker(defaultThresholds())
	rec := checker.Check(text)[0]
	if !rec.IsRunOn {
		t.Fatal("sentence not flagged")
	}
	if !strings.Contains(rec.Detail, "words") || !strings.Contains(rec.Detail, "coordinating conjunctions") {
		t.Errorf("Detail = %q, want details from every fired signal", rec.Detail)
	}
}

func TestStrictCheckerTiers(t *testing.T) {
	checker := NewStrictChecker(defaultThresholds())

	tests := []struct {
		name     string
		words    int
		severity string
	}{
		{"under warn threshold", 20, ""},
		{"warning tier", 26, models.SeverityWarning},
		{"critical tier", 31, models.SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.TrimSpace(strings.Repeat("progress ", tt.words)) + "."
			rec := checker.Check(text)[0]
			if rec.WordCount != tt.words {
				t.Fatalf("WordCount = %d, want %d", rec.WordCount, tt.words)
			}
			if rec.Severity != tt.severity {
				t.Errorf("Severity = %q, want %q", rec.Severity, tt.severity)
			}
			if tt.severity != "" && !rec.IsRunOn {
				t.Error("expected the strict checker to flag this sentence")
			}
		})
	}
}

func TestRunOnsFiltersFlagged(t *testing.T) {
	text := "Short and sweet. " +
		"We fought and we won and we organized and we marched and we delivered for every family."

	checker := NewChecker(defaultThresholds())
	flagged := checker.RunOns(text)
	if len(flagged) != 1 {
		t.Fatalf("RunOns returned %d records, want 1", len(flagged))
	}
	if flagged[0].Index != 1 {
		t.Errorf("flagged Index = %d, want 1", flagged[0].Index)
	}
}
