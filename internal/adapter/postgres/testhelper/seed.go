package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSubject inserts a subject with the given topic names for ownerID.
func SeedSubject(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, topics ...string) domain.Subject {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Subject{
		ID:        uuid.New(),
		Key:       "seed-" + uniqueSuffix(),
		OwnerID:   ownerID,
		Name:      "Subject " + uniqueSuffix(),
		Topics:    []domain.Topic{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, name := range topics {
		s.AppendTopic(name)
	}

	type topicRow struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Completed bool   `json:"completed"`
	}
	rows := make([]topicRow, len(s.Topics))
	for i, tp := range s.Topics {
		rows[i] = topicRow{ID: tp.ID, Name: tp.Name, Completed: tp.Completed}
	}
	topicsJSON, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject marshal topics: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO subjects (id, subject_key, owner_id, name, topics, next_topic_id, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Key, s.OwnerID, s.Name, topicsJSON, s.TopicCounter(), s.Version, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject insert: %v", err)
	}

	return s
}

// SeedDailyRevision inserts an empty plan for (owner, subject, day).
func SeedDailyRevision(t *testing.T, pool *pgxpool.Pool, ownerID, subjectID uuid.UUID, day domain.Date) domain.DailyRevision {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.NewDailyRevision(ownerID, subjectID, day)
	r.Version = 1
	r.CreatedAt = now
	r.UpdatedAt = now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO daily_revisions (id, subject_id, owner_id, revision_date, topics, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, '[]'::jsonb, $5, $6, $7)`,
		r.ID, r.SubjectID, r.OwnerID, day.Time(), r.Version, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDailyRevision insert: %v", err)
	}

	return *r
}
