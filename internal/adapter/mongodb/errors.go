package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// MapError converts driver errors to domain errors, prefixed with the entity
// name and id. Context errors pass through wrapped but unmapped.
func MapError(err error, entity string, id fmt.Stringer) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// MapReplaceError is MapError for version-guarded updates: no matching
// document means it changed or vanished since it was read.
func MapReplaceError(err error, entity string, id fmt.Stringer) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
	}
	return MapError(err, entity, id)
}
