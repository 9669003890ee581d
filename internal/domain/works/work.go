package works

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the store collection holding Work documents.
const Collection = "work"

// Year bounds for a Work. Values outside the range are rejected before
// anything touches the store.
const (
	YearMin = 1900
	YearMax = 2100
)

// ErrMalformedID means a caller-supplied id string is not a canonical
// 24-character hex identifier. The store is never queried in that case.
var ErrMalformedID = errors.New("malformed work id")

// ParseID validates the canonical string form of a work identifier and
// returns the native store identifier. This is the only path from a wire
// id string to a store lookup.
func ParseID(s string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(s) {
		return primitive.NilObjectID, ErrMalformedID
	}
	return primitive.ObjectIDFromHex(s)
}
