package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"projector/internal/session"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SessionRecord is one archived wizard session.
type SessionRecord struct {
	ID            string
	Name          string
	Domain        string
	Persona       string
	State         string
	QuestionCount int
	MaxQuestions  int
	Context       []byte
	SavedAt       time.Time
}

// DefinitionRecord is one archived project definition.
type DefinitionRecord struct {
	ID          string
	SessionID   string
	Name        string
	Markdown    string
	GeneratedAt time.Time
}

// NewSessionRecord snapshots a session for archiving under the given name.
func NewSessionRecord(s *session.Session, name string) (SessionRecord, error) {
	raw, err := json.Marshal(s.Context)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("failed to encode session context: %w", err)
	}
	return SessionRecord{
		ID:            uuid.NewString(),
		Name:          name,
		Domain:        s.Context.Domain,
		Persona:       string(s.Context.Persona),
		State:         string(s.State),
		QuestionCount: len(s.Context.History),
		MaxQuestions:  s.MaxQuestions,
		Context:       raw,
		SavedAt:       time.Now().UTC(),
	}, nil
}

// NewDefinitionRecord wraps a generated definition for archiving.
func NewDefinitionRecord(sessionID, name, markdown string) DefinitionRecord {
	return DefinitionRecord{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Name:        name,
		Markdown:    markdown,
		GeneratedAt: time.Now().UTC(),
	}
}

type ArchiveStore struct {
	db *sql.DB
}

// NewArchiveStore creates or opens the archive database.
func NewArchiveStore(path string) (*ArchiveStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &ArchiveStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *ArchiveStore) Close() error {
	return s.db.Close()
}

func (s *ArchiveStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			name TEXT,
			domain TEXT,
			persona TEXT,
			state TEXT,
			question_count INTEGER,
			max_questions INTEGER,
			context JSON,
			saved_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS definitions (
			id TEXT PRIMARY KEY,
			session_id TEXT,
			name TEXT,
			markdown TEXT,
			generated_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_definitions_session ON definitions(session_id);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveSession inserts or replaces an archived session.
func (s *ArchiveStore) SaveSession(ctx context.Context, rec SessionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, name, domain, persona, state, question_count, max_questions, context, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			domain=excluded.domain,
			persona=excluded.persona,
			state=excluded.state,
			question_count=excluded.question_count,
			max_questions=excluded.max_questions,
			context=excluded.context,
			saved_at=excluded.saved_at
	`, rec.ID, rec.Name, rec.Domain, rec.Persona, rec.State, rec.QuestionCount, rec.MaxQuestions, rec.Context, rec.SavedAt.Unix())

	return err
}

// ListSessions returns all archived sessions, newest first.
func (s *ArchiveStore) ListSessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, domain, persona, state, question_count, max_questions, context, saved_at
		FROM sessions ORDER BY saved_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var savedAt int64
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Domain, &rec.Persona, &rec.State,
			&rec.QuestionCount, &rec.MaxQuestions, &rec.Context, &savedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		rec.SavedAt = time.Unix(savedAt, 0).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SaveDefinition inserts or replaces an archived definition.
func (s *ArchiveStore) SaveDefinition(ctx context.Context, rec DefinitionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO definitions (id, session_id, name, markdown, generated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			session_id=excluded.session_id,
			name=excluded.name,
			markdown=excluded.markdown,
			generated_at=excluded.generated_at
	`, rec.ID, rec.SessionID, rec.Name, rec.Markdown, rec.GeneratedAt.Unix())

	return err
}

// ListDefinitions returns all archived definitions, newest first.
func (s *ArchiveStore) ListDefinitions(ctx context.Context) ([]DefinitionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, name, markdown, generated_at
		FROM definitions ORDER BY generated_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query definitions: %w", err)
	}
	defer rows.Close()

	var records []DefinitionRecord
	for rows.Next() {
		var rec DefinitionRecord
		var generatedAt int64
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Name, &rec.Markdown, &generatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan definition: %w", err)
		}
		rec.GeneratedAt = time.Unix(generatedAt, 0).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}
