package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store errors.
var (
	// ErrNotFound means the identifier is well-formed but no document
	// matches it. Distinct from a store/driver failure.
	ErrNotFound = errors.New("document not found")
)

// Store is the document store gateway. The store assigns every identifier
// at insert time; callers never supply one.
type Store interface {
	// Insert writes a new document (no _id field) and returns the
	// identifier assigned by the store.
	Insert(ctx context.Context, collection string, doc bson.M) (primitive.ObjectID, error)

	// Find returns documents matching filter (nil/empty = all), capped at
	// limit, in store-native order.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// FindByID returns the single document with the given identifier, or
	// ErrNotFound.
	FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)

	// CollectionNames lists the collections reachable through the store.
	CollectionNames(ctx context.Context) ([]string, error)

	// Name is the store's logical database name.
	Name() string
}
