// ABOUTME: SQLite schema for the talent warehouse star layout
// ABOUTME: Core tables plus the filter cache and the FTS5 search index
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Denormalized candidate summary rows, one per candidate
CREATE TABLE IF NOT EXISTS candidates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    current_title TEXT,
    current_company TEXT,
    years_experience REAL,
    primary_sector TEXT,
    investment_approach TEXT,
    primary_geography TEXT,
    summary_blurb TEXT,
    top_skills JSON,
    notable_experience JSON,
    education_highlight TEXT,
    certifications JSON,
    resume_path TEXT,
    parsed_id INTEGER,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Archival copy of the raw extracted record
CREATE TABLE IF NOT EXISTS parsed_resumes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    candidate_name TEXT,
    parsed_json JSON,
    source_file TEXT,
    resume_path TEXT,
    summary_id INTEGER,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Work history, many rows per candidate
CREATE TABLE IF NOT EXISTS experiences (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    candidate_id INTEGER,
    company TEXT,
    title TEXT,
    start_date TEXT,
    end_date TEXT,
    sectors JSON,
    approach TEXT,
    client_type TEXT,
    num_companies_covered INTEGER,
    num_sectors_covered INTEGER,
    coverage_value TEXT,
    regions_covered JSON,
    sharpe_ratio REAL,
    alpha TEXT,
    valuation_methods_used JSON,
    quant_tools_used JSON,
    bullet_points JSON,
    FOREIGN KEY(candidate_id) REFERENCES candidates(id)
);

-- Degrees earned, many rows per candidate
CREATE TABLE IF NOT EXISTS education (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    candidate_id INTEGER,
    degree TEXT,
    major TEXT,
    school TEXT,
    start_date TEXT,
    end_date TEXT,
    honors TEXT,
    FOREIGN KEY(candidate_id) REFERENCES candidates(id)
);

-- Normalized skills, one skill per row
CREATE TABLE IF NOT EXISTS skills (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    candidate_id INTEGER,
    skill TEXT,
    FOREIGN KEY(candidate_id) REFERENCES candidates(id)
);

-- Completeness score and validation issues per candidate
CREATE TABLE IF NOT EXISTS quality_scores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    candidate_id INTEGER,
    quality_score REAL,
    grade TEXT,
    total_issues INTEGER,
    issues JSON,
    data_completeness JSON,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY(candidate_id) REFERENCES candidates(id)
);

-- Pre-computed distinct filter values, deduplicated on write
CREATE TABLE IF NOT EXISTS filter_values (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    field_name TEXT NOT NULL,
    field_value TEXT NOT NULL,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(field_name, field_value)
);

CREATE INDEX IF NOT EXISTS idx_filter_field ON filter_values(field_name);

-- Full-text index over all searchable candidate text
CREATE VIRTUAL TABLE IF NOT EXISTS candidates_fts USING fts5(
    candidate_id UNINDEXED,
    name,
    current_title,
    current_company,
    skills,
    experience_text,
    education_text,
    all_companies,
    certifications
);
`

// DropSchema removes every warehouse table. Reset runs it before recreating
// the schema; all stored data is lost.
const DropSchema = `
DROP TABLE IF EXISTS candidates;
DROP TABLE IF EXISTS parsed_resumes;
DROP TABLE IF EXISTS experiences;
DROP TABLE IF EXISTS education;
DROP TABLE IF EXISTS skills;
DROP TABLE IF EXISTS quality_scores;
DROP TABLE IF EXISTS filter_values;
DROP TABLE IF EXISTS candidates_fts;
`

// SchemaVersion is the current schema version
const SchemaVersion = 1
