package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore backs the store abstraction with a single-file database so
// quiz links survive a restart. Same Store contract as MemoryStore.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "quiz.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	// Details and answers stay JSON-encoded: the store treats both as opaque
	// payloads, so relational decomposition would buy nothing here.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quizzes (
			quiz_id TEXT PRIMARY KEY,
			created_at_unix INTEGER NOT NULL,
			expires_at_unix INTEGER NOT NULL,
			details_json TEXT NOT NULL,
			answers_json TEXT,
			is_completed INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quizzes_created_at ON quizzes(created_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Put(ctx context.Context, record Record) error {
	if record.QuizID == "" {
		return errors.New("quiz id is required")
	}

	detailsJSON, answersJSON, err := encodeRecord(record)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO quizzes (quiz_id, created_at_unix, expires_at_unix, details_json, answers_json, is_completed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.QuizID,
		record.CreatedAt.UnixNano(),
		record.ExpiresAt.UnixNano(),
		detailsJSON,
		answersJSON,
		boolToInt(record.IsCompleted),
	)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, quizID string) (Record, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT quiz_id, created_at_unix, expires_at_unix, details_json, answers_json, is_completed
		 FROM quizzes WHERE quiz_id = ?`,
		quizID,
	)
	return scanRecord(row)
}

// Update reads, mutates and rewrites one record inside a transaction so
// concurrent submissions resolve to a whole record rather than interleaved
// columns.
func (s *SQLiteStore) Update(ctx context.Context, quizID string, mutate func(*Record) error) (Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(
		ctx,
		`SELECT quiz_id, created_at_unix, expires_at_unix, details_json, answers_json, is_completed
		 FROM quizzes WHERE quiz_id = ?`,
		quizID,
	)
	record, err := scanRecord(row)
	if err != nil {
		return Record{}, err
	}

	if err := mutate(&record); err != nil {
		return Record{}, err
	}

	detailsJSON, answersJSON, err := encodeRecord(record)
	if err != nil {
		return Record{}, err
	}

	_, err = tx.ExecContext(
		ctx,
		`UPDATE quizzes
		 SET created_at_unix = ?, expires_at_unix = ?, details_json = ?, answers_json = ?, is_completed = ?
		 WHERE quiz_id = ?`,
		record.CreatedAt.UnixNano(),
		record.ExpiresAt.UnixNano(),
		detailsJSON,
		answersJSON,
		boolToInt(record.IsCompleted),
		record.QuizID,
	)
	if err != nil {
		return Record{}, err
	}

	if err := tx.Commit(); err != nil {
		return Record{}, err
	}
	return record, nil
}

type recordRow interface {
	Scan(dest ...any) error
}

func scanRecord(row recordRow) (Record, error) {
	var (
		record        Record
		createdAtUnix int64
		expiresAtUnix int64
		detailsJSON   string
		answersJSON   sql.NullString
		completed     int
	)
	err := row.Scan(&record.QuizID, &createdAtUnix, &expiresAtUnix, &detailsJSON, &answersJSON, &completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrQuizNotFound
		}
		return Record{}, err
	}

	record.CreatedAt = time.Unix(0, createdAtUnix).UTC()
	record.ExpiresAt = time.Unix(0, expiresAtUnix).UTC()
	record.IsCompleted = completed != 0

	if err := json.Unmarshal([]byte(detailsJSON), &record.Details); err != nil {
		return Record{}, err
	}
	if answersJSON.Valid {
		if err := json.Unmarshal([]byte(answersJSON.String), &record.Answers); err != nil {
			return Record{}, err
		}
	}

	return record, nil
}

func encodeRecord(record Record) (string, sql.NullString, error) {
	details, err := json.Marshal(record.Details)
	if err != nil {
		return "", sql.NullString{}, err
	}

	var answersJSON sql.NullString
	if record.Answers != nil {
		answers, err := json.Marshal(record.Answers)
		if err != nil {
			return "", sql.NullString{}, err
		}
		answersJSON = sql.NullString{String: string(answers), Valid: true}
	}

	return string(details), answersJSON, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
