package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"projector/internal/interview"
	"projector/internal/question"
	"projector/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *ArchiveStore {
	t.Helper()
	store, err := NewArchiveStore(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestArchiveStore_SaveSession_RoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	s := session.New().WithMaxQuestions(5)
	s.Context.Domain = "Healthcare"
	s.Context.Persona = interview.PersonaComplianceOfficer
	s.Context.RecordAnswer(question.NewYesNo("q_1", "Does it handle patient data?"), "Yes")
	s.State = session.StateCompleted

	rec, err := NewSessionRecord(s, "Patient Triage Bot")
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(ctx, rec))

	records, err := store.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "Patient Triage Bot", got.Name)
	assert.Equal(t, "Healthcare", got.Domain)
	assert.Equal(t, "ComplianceOfficer", got.Persona)
	assert.Equal(t, "Completed", got.State)
	assert.Equal(t, 1, got.QuestionCount)
	assert.Equal(t, 5, got.MaxQuestions)
	assert.WithinDuration(t, rec.SavedAt, got.SavedAt, 2*time.Second)

	// The context payload survives as a decodable snapshot.
	var loaded interview.Context
	require.NoError(t, json.Unmarshal(got.Context, &loaded))
	require.Len(t, loaded.History, 1)
	assert.Equal(t, "Yes", loaded.History[0].Response)
}

func TestArchiveStore_SaveSession_UpsertsByID(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	rec, err := NewSessionRecord(session.New(), "Draft")
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(ctx, rec))

	rec.Name = "Final"
	rec.State = "Completed"
	require.NoError(t, store.SaveSession(ctx, rec))

	records, err := store.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Final", records[0].Name)
	assert.Equal(t, "Completed", records[0].State)
}

func TestArchiveStore_ListSessions_NewestFirst(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	older, err := NewSessionRecord(session.New(), "Older")
	require.NoError(t, err)
	older.SavedAt = time.Now().UTC().Add(-time.Hour)

	newer, err := NewSessionRecord(session.New(), "Newer")
	require.NoError(t, err)

	require.NoError(t, store.SaveSession(ctx, older))
	require.NoError(t, store.SaveSession(ctx, newer))

	records, err := store.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Newer", records[0].Name)
	assert.Equal(t, "Older", records[1].Name)
}

func TestArchiveStore_Definitions(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	sessionRec, err := NewSessionRecord(session.New(), "Support Bot")
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(ctx, sessionRec))

	rec := NewDefinitionRecord(sessionRec.ID, "Support Bot", "# Support Bot\n\n## Scope ✅\n\nTier-1 tickets.\n\n")
	require.NoError(t, store.SaveDefinition(ctx, rec))

	older := NewDefinitionRecord(sessionRec.ID, "Earlier Draft", "# Draft\n")
	older.GeneratedAt = time.Now().UTC().Add(-2 * time.Hour)
	require.NoError(t, store.SaveDefinition(ctx, older))

	records, err := store.ListDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Support Bot", records[0].Name)
	assert.Equal(t, sessionRec.ID, records[0].SessionID)
	assert.Contains(t, records[0].Markdown, "## Scope ✅")
	assert.Equal(t, "Earlier Draft", records[1].Name)
}

func TestArchiveStore_EmptyArchive(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	sessions, err := store.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	definitions, err := store.ListDefinitions(ctx)
	require.NoError(t, err)
	assert.Empty(t, definitions)
}

func TestNewSessionRecord(t *testing.T) {
	s := session.New()
	s.Context.Domain = "Gaming"

	rec, err := NewSessionRecord(s, "NPC Dialogue")
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "NPC Dialogue", rec.Name)
	assert.Equal(t, "Gaming", rec.Domain)
	assert.Equal(t, "Default", rec.Persona)
	assert.Equal(t, "Initial", rec.State)
	assert.Zero(t, rec.QuestionCount)
	assert.Equal(t, session.DefaultMaxQuestions, rec.MaxQuestions)
	assert.False(t, rec.SavedAt.IsZero())
}
