package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Instructor represents an instructor profile. Created out of band; the
// API only lists them.
type Instructor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	PhotoURL        string             `bson:"photoUrl" json:"photoUrl"`
	NumberOfClasses int                `bson:"numberOfClasses" json:"numberOfClasses"`
}
