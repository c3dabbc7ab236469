package db

const schema = `
CREATE TABLE IF NOT EXISTS speakers (
    speaker_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS quotes (
    quote_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    speaker_id INTEGER NOT NULL REFERENCES speakers(speaker_id) ON DELETE CASCADE,
    text       TEXT NOT NULL,
    source_url TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_quotes_speaker ON quotes(speaker_id);

CREATE TABLE IF NOT EXISTS settings (
    content_type TEXT PRIMARY KEY,
    target       REAL NOT NULL,
    min          REAL NOT NULL,
    max          REAL NOT NULL,
    note         TEXT,
    updated_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS analyses (
    analysis_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    content_type  TEXT NOT NULL,
    target_grade  REAL NOT NULL,
    average_grade REAL NOT NULL,
    on_target     INTEGER NOT NULL DEFAULT 0,
    overall_score REAL,
    readiness     TEXT,
    report_json   TEXT NOT NULL,
    created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
