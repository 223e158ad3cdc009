// Package audit implements the append-only audit log on MongoDB.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Repo provides audit log persistence backed by MongoDB.
type Repo struct {
	db *mongo.Database
}

// New creates a new audit repository.
func New(db *mongo.Database) *Repo {
	return &Repo{db: db}
}

type recordDoc struct {
	ID         string         `bson:"_id"`
	OwnerID    string         `bson:"user"`
	EntityType string         `bson:"entity_type"`
	EntityID   *string        `bson:"entity_id,omitempty"`
	Action     string         `bson:"action"`
	Changes    map[string]any `bson:"changes"`
	CreatedAt  time.Time      `bson:"created_at"`
}

func (r *Repo) coll() *mongo.Collection {
	return r.db.Collection(mongodb.CollAuditLog)
}

// Log appends an audit record. A zero ID or CreatedAt is filled in.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	doc := recordDoc{
		ID:         record.ID.String(),
		OwnerID:    record.OwnerID.String(),
		EntityType: string(record.EntityType),
		Action:     string(record.Action),
		Changes:    changes,
		CreatedAt:  record.CreatedAt.UTC().Truncate(time.Millisecond),
	}
	if record.EntityID != nil {
		s := record.EntityID.String()
		doc.EntityID = &s
	}

	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		return mongodb.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// GetByEntity returns the change history of one entity, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll().Find(ctx, bson.M{"entity_type": string(entityType), "entity_id": entityID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	var docs []recordDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	out := make([]domain.AuditRecord, 0, len(docs))
	for _, d := range docs {
		id, err := mongodb.ParseID("audit _id", d.ID)
		if err != nil {
			return nil, err
		}
		owner, err := mongodb.ParseID("audit user", d.OwnerID)
		if err != nil {
			return nil, err
		}
		eid := entityID
		out = append(out, domain.AuditRecord{
			ID:         id,
			OwnerID:    owner,
			EntityType: domain.EntityType(d.EntityType),
			EntityID:   &eid,
			Action:     domain.AuditAction(d.Action),
			Changes:    d.Changes,
			CreatedAt:  d.CreatedAt,
		})
	}
	return out, nil
}
