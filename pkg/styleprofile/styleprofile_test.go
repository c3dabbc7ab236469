package styleprofile

import (
	"fmt"
	"strings"
	"testing"

	"github.com/polisapp/copydesk/models"
)

func TestEmptyCorpusShortCircuits(t *testing.T) {
	p := NewProfiler(nil)

	profile := p.BuildProfile(nil)
	if profile.SampleCount != 0 {
		t.Fatalf("SampleCount = %d, want 0", profile.SampleCount)
	}

	deviations := p.CheckConsistency("Anything at all goes here!", profile)
	if len(deviations) != 0 {
		t.Errorf("got %d deviations from an empty profile, want 0", len(deviations))
	}
}

func TestBuildProfileMeans(t *testing.T) {
	p := NewProfiler(nil)

	refs := []string{
		"We knocked on every door in this county today.", // 9 words
		"Our neighbors deserve a fair shot at success.",  // 8 words
	}
	profile := p.BuildProfile(refs)

	if profile.SampleCount != 2 {
		t.Fatalf("SampleCount = %d, want 2", profile.SampleCount)
	}
	if profile.AvgSentenceLength != 8.5 {
		t.Errorf("AvgSentenceLength = %f, want 8.5", profile.AvgSentenceLength)
	}
	if profile.ExclamationRate != 0 {
		t.Errorf("ExclamationRate = %f, want 0", profile.ExclamationRate)
	}
}

func TestSentenceLengthDeviation(t *testing.T) {
	p := NewProfiler(nil)

	// Twenty references of ten-word sentences.
	refs := make([]string, 20)
	for i := range refs {
		refs[i] = fmt.Sprintf("Voter number %d deserves a fair shot at real success.", i)
	}
	profile := p.BuildProfile(refs)

	long := strings.TrimSpace(strings.Repeat("word ", 40))
	deviations := p.CheckConsistency(long, profile)

	found := false
	for _, d := range deviations {
		if d.Aspect == models.AspectSentenceLength {
			found = true
			if d.Magnitude < 20 {
				t.Errorf("Magnitude = %f, want roughly 30", d.Magnitude)
			}
		}
	}
	if !found {
		t.Errorf("no sentence_length deviation in %+v", deviations)
	}
}

func TestFormalityDeviationAndSummary(t *testing.T) {
	p := NewProfiler(nil)

	refs := []string{
		"We're gonna win this thing!",
		"We're gonna fight for you!",
		"We're gonna get this done!",
		"We're gonna keep that promise!",
		"We're gonna show up everywhere!",
	}
	profile := p.BuildProfile(refs)

	formal := "Furthermore, the administration will consequently therefore implement comprehensive remediation."
	deviations := p.CheckConsistency(formal, profile)

	var formalityDev *models.StyleDeviation
	var summary *models.StyleDeviation
	for i := range deviations {
		switch deviations[i].Aspect {
		case models.AspectFormality:
			formalityDev = &deviations[i]
		case models.AspectOverall:
			summary = &deviations[i]
		}
	}

	if formalityDev == nil {
		t.Fatalf("no formality deviation in %+v", deviations)
	}
	if formalityDev.Severity != models.SeverityWarning {
		t.Errorf("formality Severity = %q, want warning for a gap above 3.0", formalityDev.Severity)
	}
	if summary == nil {
		t.Error("expected the combined authenticity warning with 3+ deviations")
	}
}

func TestExclamationDeviation(t *testing.T) {
	p := NewProfiler(nil)

	calm := []string{
		"We will rebuild every road in this district.",
		"Our schools deserve steady, serious investment.",
		"This campaign answers to working families.",
	}
	profile := p.BuildProfile(calm)
	if profile.ExclamationRate != 0 {
		t.Fatalf("ExclamationRate = %f, want 0", profile.ExclamationRate)
	}

	deviations := p.CheckConsistency("We will win this fight!", profile)
	found := false
	for _, d := range deviations {
		if d.Aspect == models.AspectExclamation {
			found = true
		}
	}
	if !found {
		t.Errorf("no exclamation deviation in %+v", deviations)
	}
}

func TestContractionGate(t *testing.T) {
	p := NewProfiler(nil)

	// Profile with no contractions at all: the contraction dimension
	// must stay silent no matter what the new text does.
	formal := []string{
		"We will not waver in this effort.",
		"Our administration will deliver on schedule.",
	}
	profile := p.BuildProfile(formal)
	if profile.ContractionRate != 0 {
		t.Fatalf("ContractionRate = %f, want 0", profile.ContractionRate)
	}

	deviations := p.CheckConsistency("We're gonna win, we're gonna fight, we'll never quit.", profile)
	for _, d := range deviations {
		if d.Aspect == models.AspectContractions {
			t.Errorf("contraction deviation fired despite profile rate below 0.1: %+v", d)
		}
	}
}

func TestVectorContractionAndFirstPerson(t *testing.T) {
	p := NewProfiler(nil)

	v := p.Vector("I can't promise miracles, but I will fight for us.")
	// 10 words, one contraction, three first-person tokens (I, I, us).
	if v.ContractionRate <= 0 {
		t.Errorf("ContractionRate = %f, want positive", v.ContractionRate)
	}
	wantFP := 3.0 / 10.0
	if diff := v.FirstPersonRate - wantFP; diff > 0.001 || diff < -0.001 {
		t.Errorf("FirstPersonRate = %f, want %f", v.FirstPersonRate, wantFP)
	}
	if v.HasExclamation {
		t.Error("HasExclamation = true, want false")
	}
}

func TestFormalityWholeWordTransitions(t *testing.T) {
	// "thus" embedded in "enthusiasm" must not read as a formal
	// transition; both sentences score identically.
	embedded := formality("voters share real enthusiasm today", 0, false)
	plain := formality("voters share real optimism today", 0, false)
	if embedded != plain {
		t.Errorf("formality = %f with an embedded transition substring, want %f", embedded, plain)
	}
	if embedded != 6.0 {
		t.Errorf("formality = %f, want 6.0 (neutral plus the no-contraction bump)", embedded)
	}

	if got := formality("thus, we will prevail", 0, false); got != 6.5 {
		t.Errorf("formality = %f for a genuine transition word, want 6.5", got)
	}
}

func TestMeanStdDev(t *testing.T) {
	mean, stddev := meanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 {
		t.Errorf("mean = %f, want 5", mean)
	}
	if stddev != 2 {
		t.Errorf("stddev = %f, want 2", stddev)
	}

	mean, stddev = meanStdDev(nil)
	if mean != 0 || stddev != 0 {
		t.Errorf("empty input = (%f, %f), want (0, 0)", mean, stddev)
	}
}
