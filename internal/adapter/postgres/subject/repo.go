// Package subject implements the Subject repository using PostgreSQL.
// Topics are stored as a JSONB array on the subject row.
package subject

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Repo provides subject persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subject repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const subjectColumns = `id, subject_key, owner_id, name, description, deleted, topics, next_topic_id, version, created_at, updated_at`

const createSQL = `
INSERT INTO subjects (id, subject_key, owner_id, name, description, deleted, topics, next_topic_id, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $9)
RETURNING ` + subjectColumns

const getByIDSQL = `
SELECT ` + subjectColumns + `
FROM subjects
WHERE id = $1`

const replaceSQL = `
UPDATE subjects
SET name = $3, description = $4, deleted = $5, topics = $6, next_topic_id = $7, version = version + 1, updated_at = $8
WHERE id = $1 AND version = $2
RETURNING ` + subjectColumns

const deleteSQL = `DELETE FROM subjects WHERE id = $1`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a subject by primary key regardless of owner.
// Returns domain.ErrNotFound if the subject does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSubject(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "subject", id)
	}
	return s, nil
}

// List returns subjects ordered by creation time, optionally scoped to an owner.
func (r *Repo) List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error) {
	query := psql.Select(subjectColumns).From("subjects").OrderBy("created_at ASC", "id ASC")
	if filter.OwnerID != nil {
		query = query.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subjects query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := querier.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	subjects := make([]domain.Subject, 0)
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("list subjects: %w", err)
		}
		subjects = append(subjects, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	return subjects, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new subject at version 1 and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	topicsJSON, err := marshalTopics(s.Topics)
	if err != nil {
		return nil, fmt.Errorf("subject %s: %w", s.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createSQL,
		s.ID, s.Key, s.OwnerID, s.Name, s.Description, s.Deleted, topicsJSON, s.TopicCounter(), now,
	)

	created, err := scanSubject(row)
	if err != nil {
		return nil, postgres.MapError(err, "subject", s.ID)
	}
	return created, nil
}

// Replace writes every mutable field of s if the stored version still equals
// s.Version. Returns domain.ErrConflict when it does not.
func (r *Repo) Replace(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	topicsJSON, err := marshalTopics(s.Topics)
	if err != nil {
		return nil, fmt.Errorf("subject %s: %w", s.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, replaceSQL,
		s.ID, s.Version, s.Name, s.Description, s.Deleted, topicsJSON, s.TopicCounter(), now,
	)

	updated, err := scanSubject(row)
	if err != nil {
		return nil, postgres.MapReplaceError(err, "subject", s.ID)
	}
	return updated, nil
}

// Delete removes a subject. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "subject", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subject %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning and JSONB mapping
// ---------------------------------------------------------------------------

type topicJSON struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

func scanSubject(row pgx.Row) (*domain.Subject, error) {
	var (
		s          domain.Subject
		topicsJSON []byte
	)

	err := row.Scan(
		&s.ID, &s.Key, &s.OwnerID, &s.Name, &s.Description, &s.Deleted,
		&topicsJSON, &s.NextTopicID, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Topics, err = unmarshalTopics(topicsJSON)
	if err != nil {
		return nil, fmt.Errorf("subject %s: %w", s.ID, err)
	}
	return &s, nil
}

func marshalTopics(topics []domain.Topic) ([]byte, error) {
	out := make([]topicJSON, len(topics))
	for i, t := range topics {
		out[i] = topicJSON{ID: t.ID, Name: t.Name, Completed: t.Completed}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal topics: %w", err)
	}
	return b, nil
}

func unmarshalTopics(b []byte) ([]domain.Topic, error) {
	topics := make([]domain.Topic, 0)
	if len(b) == 0 {
		return topics, nil
	}

	var raw []topicJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal topics: %w", err)
	}
	for _, t := range raw {
		topics = append(topics, domain.Topic{ID: t.ID, Name: t.Name, Completed: t.Completed})
	}
	return topics, nil
}
