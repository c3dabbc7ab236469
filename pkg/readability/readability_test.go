package readability

import (
	"math"
	"testing"

	"github.com/polisapp/copydesk/models"
)

func almostEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.001 {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

func sampleStats() models.TextStatistics {
	return models.TextStatistics{
		WordCount:           100,
		SentenceCount:       5,
		SyllableCount:       150,
		LetterCount:         450,
		ComplexWordCount:    10,
		PolysyllableCount:   10,
		AvgSentenceLength:   20,
		AvgSyllablesPerWord: 1.5,
	}
}

func TestFormulas(t *testing.T) {
	st := sampleStats()

	almostEqual(t, "FleschKincaid", FleschKincaid(st), 0.39*20+11.8*1.5-15.59)
	almostEqual(t, "GunningFog", GunningFog(st), 0.4*(20+10))
	almostEqual(t, "ColemanLiau", ColemanLiau(st), 0.0588*450-0.296*5-15.8)
	almostEqual(t, "ARI", ARI(st), 4.71*4.5+0.5*20-21.43)
	almostEqual(t, "ReadingEase", ReadingEase(st), 206.835-1.015*20-84.6*1.5)
}

func TestSMOGShortTextBranch(t *testing.T) {
	st := sampleStats()

	// Under 30 sentences the polysyllable count is scaled to a
	// 30-sentence sample.
	almostEqual(t, "SMOG short", SMOG(st), 1.0430*math.Sqrt(10*(30.0/5.0))+3.1291)

	st.SentenceCount = 30
	almostEqual(t, "SMOG long", SMOG(st), 1.0430*math.Sqrt(10)+3.1291)

	st.SentenceCount = 45
	almostEqual(t, "SMOG over 30", SMOG(st), 1.0430*math.Sqrt(10)+3.1291)
}

func TestFormulaZeroGuards(t *testing.T) {
	var empty models.TextStatistics

	for name, got := range map[string]float64{
		"FleschKincaid": FleschKincaid(empty),
		"GunningFog":    GunningFog(empty),
		"SMOG":          SMOG(empty),
		"ColemanLiau":   ColemanLiau(empty),
		"ARI":           ARI(empty),
		"ReadingEase":   ReadingEase(empty),
	} {
		if got != 0 {
			t.Errorf("%s on empty stats = %f, want 0", name, got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("%s on empty stats is not finite: %f", name, got)
		}
	}
}

func TestFleschKincaidClamp(t *testing.T) {
	st := models.TextStatistics{
		WordCount:           10,
		SentenceCount:       5,
		AvgSentenceLength:   2,
		AvgSyllablesPerWord: 1,
	}
	if got := FleschKincaid(st); got != 0 {
		t.Errorf("FleschKincaid = %f, want clamp to 0", got)
	}
}

func TestReadingEaseClamp(t *testing.T) {
	easy := models.TextStatistics{
		WordCount: 10, SentenceCount: 10,
		AvgSentenceLength: 1, AvgSyllablesPerWord: 1,
	}
	if got := ReadingEase(easy); got != 100 {
		t.Errorf("ReadingEase easy = %f, want clamp to 100", got)
	}

	hard := models.TextStatistics{
		WordCount: 100, SentenceCount: 1,
		AvgSentenceLength: 100, AvgSyllablesPerWord: 3,
	}
	if got := ReadingEase(hard); got != 0 {
		t.Errorf("ReadingEase hard = %f, want clamp to 0", got)
	}
}

func TestFleschKincaidMonotonic(t *testing.T) {
	base := sampleStats()

	prev := FleschKincaid(base)
	for asl := 21.0; asl <= 40; asl++ {
		st := base
		st.AvgSentenceLength = asl
		grade := FleschKincaid(st)
		if grade < prev {
			t.Fatalf("grade decreased from %f to %f when ASL rose to %f", prev, grade, asl)
		}
		prev = grade
	}

	prev = FleschKincaid(base)
	for asw := 1.6; asw <= 3.0; asw += 0.1 {
		st := base
		st.AvgSyllablesPerWord = asw
		grade := FleschKincaid(st)
		if grade < prev {
			t.Fatalf("grade decreased from %f to %f when ASW rose to %f", prev, grade, asw)
		}
		prev = grade
	}
}

func TestDifficultyLabel(t *testing.T) {
	tests := []struct {
		grade float64
		want  string
	}{
		{3, models.DifficultyVeryEasy},
		{6, models.DifficultyVeryEasy},
		{7, models.DifficultyEasy},
		{9.5, models.DifficultyModerate},
		{12, models.DifficultyDifficult},
		{15, models.DifficultyChallenging},
		{17, models.DifficultyVeryDifficult},
	}

	for _, tt := range tests {
		if got := DifficultyLabel(tt.grade); got != tt.want {
			t.Errorf("DifficultyLabel(%f) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestScoreEmptyText(t *testing.T) {
	scorer := NewScorer(nil, nil)

	report := scorer.Score("   ", "statement", nil)
	if report.Stats.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", report.Stats.WordCount)
	}
	if report.AverageGrade != 0 || report.FleschKincaid != 0 || report.ReadingEase != 0 {
		t.Errorf("formula scores not zeroed: %+v", report)
	}
	if len(report.Issues) != 1 || report.Issues[0] != "no content to analyze" {
		t.Errorf("Issues = %v, want the explicit no-content issue", report.Issues)
	}
}

func TestScoreEndToEnd(t *testing.T) {
	scorer := NewScorer(nil, nil)
	target := 9.0

	report := scorer.Score(
		"We need better healthcare. Families struggle to afford care. I will expand Medicaid.",
		"statement",
		&Override{TargetGrade: &target},
	)

	if report.AverageGrade < 2 || report.AverageGrade > 7.5 {
		t.Errorf("AverageGrade = %f, want a low grade for short simple sentences", report.AverageGrade)
	}
	if report.Deviation >= 0 {
		t.Errorf("Deviation = %f, want negative (below target)", report.Deviation)
	}
	if report.OnTarget {
		t.Error("OnTarget = true, want false under tolerance 1.0")
	}
	if report.TargetGrade != 9 {
		t.Errorf("TargetGrade = %f, want the per-call override 9", report.TargetGrade)
	}
}

func TestScoreDeterminism(t *testing.T) {
	scorer := NewScorer(nil, nil)
	text := "Our campaign will cut costs for working families across every county in this state."

	first := scorer.Score(text, "press_release", nil)
	second := scorer.Score(text, "press_release", nil)
	if first.AverageGrade != second.AverageGrade || first.ReadingEase != second.ReadingEase {
		t.Errorf("repeated scoring differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestScoreTolerancePrecedence(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.SetTarget("statement", models.GradeTarget{Target: 5, Min: 4, Max: 6})
	scorer := NewScorer(cfg, nil)

	text := "We need better healthcare. Families struggle to afford care. I will expand Medicaid."

	stored := scorer.Score(text, "statement", nil)
	if stored.TargetGrade != 5 {
		t.Errorf("stored-config target = %f, want 5", stored.TargetGrade)
	}

	override := 12.0
	percall := scorer.Score(text, "statement", &Override{TargetGrade: &override})
	if percall.TargetGrade != 12 {
		t.Errorf("per-call target = %f, want 12", percall.TargetGrade)
	}
}
