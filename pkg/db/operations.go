package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/polisapp/copydesk/models"
)

// Speaker is one tracked voice with a reference corpus.
type Speaker struct {
	SpeakerID  int64
	Name       string
	QuoteCount int
	CreatedAt  time.Time
}

// Quote is one reference text attributed to a speaker.
type Quote struct {
	QuoteID   int64
	SpeakerID int64
	Text      string
	SourceURL string
	CreatedAt time.Time
}

// AnalysisRun is one saved scoring run.
type AnalysisRun struct {
	AnalysisID   int64
	ContentType  string
	TargetGrade  float64
	AverageGrade float64
	OnTarget     bool
	OverallScore float64
	Readiness    string
	ReportJSON   string
	CreatedAt    time.Time
}

// UpsertSpeaker inserts a speaker if missing and returns its ID.
func (db *DB) UpsertSpeaker(name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("speaker name is required")
	}

	var id int64
	err := db.QueryRow("SELECT speaker_id FROM speakers WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up speaker: %w", err)
	}

	res, err := db.Exec("INSERT INTO speakers (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert speaker: %w", err)
	}
	return res.LastInsertId()
}

// InsertQuote stores one reference quote for a speaker.
func (db *DB) InsertQuote(speakerID int64, text, sourceURL string) (int64, error) {
	if text == "" {
		return 0, fmt.Errorf("quote text is required")
	}
	res, err := db.Exec(
		"INSERT INTO quotes (speaker_id, text, source_url) VALUES (?, ?, ?)",
		speakerID, text, sourceURL,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert quote: %w", err)
	}
	return res.LastInsertId()
}

// QuotesForSpeaker returns the reference corpus texts for one speaker by
// name. An unknown speaker yields an empty corpus, not an error, so the
// style check degrades to a no-op.
func (db *DB) QuotesForSpeaker(name string) ([]string, error) {
	rows, err := db.Query(`
		SELECT q.text
		FROM quotes q
		JOIN speakers s ON s.speaker_id = q.speaker_id
		WHERE s.name = ?
		ORDER BY q.quote_id
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		texts = append(texts, text)
	}
	return texts, rows.Err()
}

// ListSpeakers returns all speakers with their corpus sizes.
func (db *DB) ListSpeakers() ([]Speaker, error) {
	rows, err := db.Query(`
		SELECT s.speaker_id, s.name, COUNT(q.quote_id), s.created_at
		FROM speakers s
		LEFT JOIN quotes q ON q.speaker_id = s.speaker_id
		GROUP BY s.speaker_id
		ORDER BY s.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list speakers: %w", err)
	}
	defer rows.Close()

	var speakers []Speaker
	for rows.Next() {
		var s Speaker
		if err := rows.Scan(&s.SpeakerID, &s.Name, &s.QuoteCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan speaker: %w", err)
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}

// SaveSetting persists one content type's grade target override.
func (db *DB) SaveSetting(contentType string, target models.GradeTarget) error {
	if contentType == "" {
		return fmt.Errorf("content type is required")
	}
	_, err := db.Exec(`
		INSERT INTO settings (content_type, target, min, max, note, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(content_type) DO UPDATE SET
			target = excluded.target,
			min = excluded.min,
			max = excluded.max,
			note = excluded.note,
			updated_at = CURRENT_TIMESTAMP
	`, contentType, target.Target, target.Min, target.Max, target.Note)
	if err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

// LoadSettings returns all persisted grade target overrides. These form
// the middle tier of the precedence chain: defaults < stored < per-call.
func (db *DB) LoadSettings() (map[string]models.GradeTarget, error) {
	rows, err := db.Query("SELECT content_type, target, min, max, COALESCE(note, '') FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]models.GradeTarget)
	for rows.Next() {
		var contentType string
		var t models.GradeTarget
		if err := rows.Scan(&contentType, &t.Target, &t.Min, &t.Max, &t.Note); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[contentType] = t
	}
	return settings, rows.Err()
}

// InsertAnalysis saves one scoring run.
func (db *DB) InsertAnalysis(run AnalysisRun) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO analyses (content_type, target_grade, average_grade, on_target, overall_score, readiness, report_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ContentType, run.TargetGrade, run.AverageGrade, run.OnTarget, run.OverallScore, run.Readiness, run.ReportJSON)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return res.LastInsertId()
}

// ListAnalyses returns recent runs, newest first.
func (db *DB) ListAnalyses(limit int) ([]AnalysisRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT analysis_id, content_type, target_grade, average_grade, on_target,
		       COALESCE(overall_score, 0), COALESCE(readiness, ''), created_at
		FROM analyses
		ORDER BY analysis_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var runs []AnalysisRun
	for rows.Next() {
		var r AnalysisRun
		if err := rows.Scan(&r.AnalysisID, &r.ContentType, &r.TargetGrade, &r.AverageGrade,
			&r.OnTarget, &r.OverallScore, &r.Readiness, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetAnalysis returns one saved run with its full report JSON.
func (db *DB) GetAnalysis(id int64) (*AnalysisRun, error) {
	var r AnalysisRun
	err := db.QueryRow(`
		SELECT analysis_id, content_type, target_grade, average_grade, on_target,
		       COALESCE(overall_score, 0), COALESCE(readiness, ''), report_json, created_at
		FROM analyses
		WHERE analysis_id = ?
	`, id).Scan(&r.AnalysisID, &r.ContentType, &r.TargetGrade, &r.AverageGrade,
		&r.OnTarget, &r.OverallScore, &r.Readiness, &r.ReportJSON, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &r, nil
}
