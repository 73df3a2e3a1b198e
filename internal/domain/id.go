package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID returns a fresh record identifier. Identifiers are the hex form of a
// MongoDB ObjectID regardless of the backing store, so references stay
// portable between the Postgres and Mongo backends.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether s is a syntactically valid record identifier.
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}
