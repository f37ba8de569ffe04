package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a signed-up user. Email is the deduplication key:
// at most one stored document per email value.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoUrl" json:"photoUrl"`
}
