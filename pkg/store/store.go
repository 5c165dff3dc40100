// Package store persists saved chart requests ("profiles") for the HTTP API.
//
// Only the request is stored; layouts are derived data and are rebuilt (or
// fetched from the cache) on demand. Two backends exist: [MemoryStore] for
// tests and single-process use, and [MongoStore].
package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
)

// Profile is a saved chart request.
type Profile struct {
	ID        string        `json:"id" bson:"_id"`
	Name      string        `json:"name" bson:"name"`
	Request   chart.Request `json:"request" bson:"request"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// Store saves and loads profiles.
type Store interface {
	// Save stores p, assigning an ID and creation time when they are empty,
	// and returns the stored profile. Saving an existing ID replaces it.
	Save(ctx context.Context, p Profile) (Profile, error)
	// Get fails with NOT_FOUND for unknown IDs.
	Get(ctx context.Context, id string) (Profile, error)
	// List returns all profiles, newest first.
	List(ctx context.Context) ([]Profile, error)
	// Delete fails with NOT_FOUND for unknown IDs.
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context) error
}

// prepare validates p and fills in the ID, name and creation time.
func prepare(p Profile, now time.Time) (Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	} else if err := errors.ValidateProfileID(p.ID); err != nil {
		return p, err
	}
	if strings.TrimSpace(p.Name) == "" {
		p.Name = p.Request.Name
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now.UTC().Truncate(time.Millisecond)
	}
	return p, nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "profile %q not found", id)
}
