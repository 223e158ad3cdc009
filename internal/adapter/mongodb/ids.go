package mongodb

import (
	"fmt"

	"github.com/google/uuid"
)

// ParseID converts a stored string id back to a UUID.
func ParseID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("mongodb: decode %s %q: %w", field, s, err)
	}
	return id, nil
}
