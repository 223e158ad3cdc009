// Package mongodb holds the shared pieces of the MongoDB document store:
// connection setup, index bootstrap, error mapping and the TxManager.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	CollSubjects       = "subjects"
	CollDailyRevisions = "dailyrevisions"
	CollFlashcards     = "flashcards"
	CollQuizzes        = "quizzes"
	CollAuditLog       = "audit_log"
)

// OnePerDayIndex is the unique index over (user, subject_id, revision_date).
const OnePerDayIndex = "dailyrevisions_one_per_day"

// Connect opens a client for uri, verifies it with a ping and returns the
// client together with the named database.
func Connect(ctx context.Context, uri, database string, connectTimeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetAppName("revision-planner").
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return client, client.Database(database), nil
}

// Pinger adapts a client to the readiness check.
type Pinger struct {
	Client *mongo.Client
}

// Ping checks the primary is reachable.
func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes every repository relies on. Safe to run
// on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	specs := map[string][]mongo.IndexModel{
		CollSubjects: {
			{Keys: bson.D{{Key: "subject_key", Value: 1}}, Options: options.Index().SetUnique(true).SetName("subjects_key_unique")},
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("subjects_user_created")},
		},
		CollDailyRevisions: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}, {Key: "subject_id", Value: 1}, {Key: "revision_date", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(OnePerDayIndex),
			},
		},
		CollFlashcards: {
			{Keys: bson.D{{Key: "subject_id", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("flashcards_subject")},
		},
		CollQuizzes: {
			{Keys: bson.D{{Key: "subject_id", Value: 1}}, Options: options.Index().SetName("quizzes_subject")},
		},
		CollAuditLog: {
			{Keys: bson.D{{Key: "entity_type", Value: 1}, {Key: "entity_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("audit_entity")},
		},
	}

	for coll, models := range specs {
		names, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("mongodb: create indexes on %s: %w", coll, err)
		}
		logger.Debug("mongodb indexes ensured", slog.String("collection", coll), slog.Any("indexes", names))
	}

	return nil
}
