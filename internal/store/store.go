// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists generated courses. The full course document is
// a JSON file under the courses directory; a SQLite catalog indexes the
// documents for listing and lookup.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/coursegen/pkg/types"
)

const (
	dbFile       = "catalog.db"
	coursePrefix = "course_"
)

// ErrNotFound reports that no course exists for the requested run ID.
var ErrNotFound = errors.New("course not found")

// Store manages the course documents and their SQLite catalog.
type Store struct {
	db  *sql.DB
	dir string
}

// New opens or creates the catalog database under cfg.CoursesDir and
// creates the schema if it does not exist.
func New(cfg types.StoreConfig) (*Store, error) {
	dir := cfg.CoursesDir
	if dir == "" {
		dir = "courses"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating courses directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the catalog database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS courses (
		run_id TEXT PRIMARY KEY,
		title TEXT,
		topic TEXT,
		difficulty TEXT,
		audience TEXT,
		overall_quality INTEGER,
		created_at TEXT,
		path TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Entry is one catalog row.
type Entry struct {
	RunID          string
	Title          string
	Topic          string
	Difficulty     string
	Audience       string
	OverallQuality int
	CreatedAt      time.Time
	Path           string
}

// Save writes the course document to disk and upserts its catalog row.
// It returns the document path.
func (s *Store) Save(ctx context.Context, course *types.Course) (string, error) {
	if course.RunID == "" {
		return "", fmt.Errorf("course has no run ID")
	}

	path := s.coursePath(course.RunID)
	data, err := json.MarshalIndent(course, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing course: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing course document: %w", err)
	}

	title := ""
	if course.Metadata != nil {
		title = course.Metadata.Title
	}
	quality := 0
	if course.Feedback != nil {
		quality = course.Feedback.OverallQuality
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO courses (run_id, title, topic, difficulty, audience, overall_quality, created_at, path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET
			title=excluded.title, topic=excluded.topic, difficulty=excluded.difficulty,
			audience=excluded.audience, overall_quality=excluded.overall_quality,
			created_at=excluded.created_at, path=excluded.path`,
		course.RunID, title, course.Spec.Topic, string(course.Spec.Difficulty),
		course.Spec.Audience, quality, course.CreatedAt.UTC().Format(time.RFC3339), path,
	)
	if err != nil {
		return "", fmt.Errorf("cataloging course: %w", err)
	}
	return path, nil
}

// Get loads the course document for runID.
func (s *Store) Get(ctx context.Context, runID string) (*types.Course, error) {
	var path string
	err := s.db.QueryRowContext(ctx,
		`SELECT path FROM courses WHERE run_id = ?`, runID,
	).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course document: %w", err)
	}

	var course types.Course
	if err := json.Unmarshal(data, &course); err != nil {
		return nil, fmt.Errorf("parsing course document: %w", err)
	}
	return &course, nil
}

// List returns all catalog entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, title, topic, difficulty, audience, overall_quality, created_at, path
		 FROM courses ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.RunID, &e.Title, &e.Topic, &e.Difficulty,
			&e.Audience, &e.OverallQuality, &createdAt, &e.Path); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) coursePath(runID string) string {
	return filepath.Join(s.dir, coursePrefix+runID+".json")
}
