// Package revision implements the DailyRevision repository using PostgreSQL.
// Entries are stored as a JSONB array; the unique constraint
// daily_revisions_one_per_day keeps one row per (owner, subject, date).
package revision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Repo provides daily revision persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily revision repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const revisionColumns = `id, subject_id, owner_id, revision_date, topics, next_topic_id, version, created_at, updated_at`

const createSQL = `
INSERT INTO daily_revisions (id, subject_id, owner_id, revision_date, topics, next_topic_id, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $7)
RETURNING ` + revisionColumns

const createIfAbsentSQL = `
INSERT INTO daily_revisions (id, subject_id, owner_id, revision_date, topics, next_topic_id, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, '[]'::jsonb, 1, 1, $5, $5)
ON CONFLICT ON CONSTRAINT daily_revisions_one_per_day DO NOTHING
RETURNING ` + revisionColumns

const getByIDSQL = `
SELECT ` + revisionColumns + `
FROM daily_revisions
WHERE id = $1`

const getByDaySQL = `
SELECT ` + revisionColumns + `
FROM daily_revisions
WHERE owner_id = $1 AND subject_id = $2 AND revision_date = $3`

const replaceSQL = `
UPDATE daily_revisions
SET topics = $3, next_topic_id = $4, version = version + 1, updated_at = $5
WHERE id = $1 AND version = $2
RETURNING ` + revisionColumns

const deleteSQL = `DELETE FROM daily_revisions WHERE id = $1`

const deleteBySubjectSQL = `DELETE FROM daily_revisions WHERE owner_id = $1 AND subject_id = $2`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a daily revision by primary key regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyRevision, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rev, err := scanRevision(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "daily_revision", id)
	}
	return rev, nil
}

// GetByDay returns the plan of (owner, subject, day).
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetByDay(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rev, err := scanRevision(querier.QueryRow(ctx, getByDaySQL, ownerID, subjectID, day.Time()))
	if err != nil {
		return nil, postgres.MapError(err, "daily_revision", dayKey{subjectID, day})
	}
	return rev, nil
}

// List returns the owner's plans ordered by date, optionally narrowed to one
// subject and to the range [day, day+1).
func (r *Repo) List(ctx context.Context, filter domain.RevisionFilter) ([]domain.DailyRevision, error) {
	query := psql.Select(revisionColumns).
		From("daily_revisions").
		Where(sq.Eq{"owner_id": filter.OwnerID}).
		OrderBy("revision_date ASC", "created_at ASC")

	if filter.SubjectID != nil {
		query = query.Where(sq.Eq{"subject_id": *filter.SubjectID})
	}
	if filter.Date != nil {
		query = query.Where(sq.And{
			sq.GtOrEq{"revision_date": filter.Date.Time()},
			sq.Lt{"revision_date": filter.Date.AddDays(1).Time()},
		})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list daily_revisions query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := querier.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily_revisions: %w", err)
	}
	defer rows.Close()

	revisions := make([]domain.DailyRevision, 0)
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, fmt.Errorf("list daily_revisions: %w", err)
		}
		revisions = append(revisions, *rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list daily_revisions: %w", err)
	}

	return revisions, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a plan at version 1. A second plan for the same
// (owner, subject, date) fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error) {
	topicsJSON, err := marshalTopics(rev.Topics)
	if err != nil {
		return nil, fmt.Errorf("daily_revision %s: %w", rev.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createSQL,
		rev.ID, rev.SubjectID, rev.OwnerID, rev.Date.Time(), topicsJSON, rev.TopicCounter(), now,
	)

	created, err := scanRevision(row)
	if err != nil {
		return nil, postgres.MapError(err, "daily_revision", rev.ID)
	}
	return created, nil
}

// GetOrCreate returns the plan of (owner, subject, day), inserting an empty
// one if absent. created reports whether this call inserted it.
func (r *Repo) GetOrCreate(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, bool, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createIfAbsentSQL, uuid.New(), subjectID, ownerID, day.Time(), now)

	rev, err := scanRevision(row)
	if err == nil {
		return rev, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, postgres.MapError(err, "daily_revision", dayKey{subjectID, day})
	}

	// Conflict: someone else holds the day.
	rev, err = r.GetByDay(ctx, ownerID, subjectID, day)
	if err != nil {
		return nil, false, err
	}
	return rev, false, nil
}

// Replace writes the entry list of rev if the stored version still equals
// rev.Version. Returns domain.ErrConflict when it does not.
func (r *Repo) Replace(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error) {
	topicsJSON, err := marshalTopics(rev.Topics)
	if err != nil {
		return nil, fmt.Errorf("daily_revision %s: %w", rev.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	querier := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanRevision(querier.QueryRow(ctx, replaceSQL, rev.ID, rev.Version, topicsJSON, rev.TopicCounter(), now))
	if err != nil {
		return nil, postgres.MapReplaceError(err, "daily_revision", rev.ID)
	}
	return updated, nil
}

// Delete removes one plan. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "daily_revision", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("daily_revision %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBySubject removes every plan of (owner, subject) and returns how many.
func (r *Repo) DeleteBySubject(ctx context.Context, ownerID, subjectID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteBySubjectSQL, ownerID, subjectID)
	if err != nil {
		return 0, postgres.MapError(err, "daily_revisions of subject", subjectID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Scanning and JSONB mapping
// ---------------------------------------------------------------------------

// dayKey identifies a plan by subject and day in error messages.
type dayKey struct {
	subjectID uuid.UUID
	day       domain.Date
}

func (k dayKey) String() string {
	return k.subjectID.String() + "@" + k.day.String()
}

type topicJSON struct {
	ID           int        `json:"id"`
	TopicName    string     `json:"topicName"`
	TimerMinutes int        `json:"timer"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

func scanRevision(row pgx.Row) (*domain.DailyRevision, error) {
	var (
		rev        domain.DailyRevision
		date       time.Time
		topicsJSON []byte
	)

	err := row.Scan(
		&rev.ID, &rev.SubjectID, &rev.OwnerID, &date,
		&topicsJSON, &rev.NextTopicID, &rev.Version, &rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rev.Date = domain.DateOf(date)

	rev.Topics, err = unmarshalTopics(topicsJSON)
	if err != nil {
		return nil, fmt.Errorf("daily_revision %s: %w", rev.ID, err)
	}
	return &rev, nil
}

func marshalTopics(topics []domain.RevisionTopic) ([]byte, error) {
	out := make([]topicJSON, len(topics))
	for i, t := range topics {
		out[i] = topicJSON{
			ID:           t.ID,
			TopicName:    t.TopicName,
			TimerMinutes: t.TimerMinutes,
			Completed:    t.Completed,
			CompletedAt:  t.CompletedAt,
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal revision topics: %w", err)
	}
	return b, nil
}

func unmarshalTopics(b []byte) ([]domain.RevisionTopic, error) {
	topics := make([]domain.RevisionTopic, 0)
	if len(b) == 0 {
		return topics, nil
	}

	var raw []topicJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal revision topics: %w", err)
	}
	for _, t := range raw {
		topics = append(topics, domain.RevisionTopic{
			ID:           t.ID,
			TopicName:    t.TopicName,
			TimerMinutes: t.TimerMinutes,
			Completed:    t.Completed,
			CompletedAt:  t.CompletedAt,
		})
	}
	return topics, nil
}
