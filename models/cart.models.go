package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem represents a class added to a user's cart. ClassID is not
// validated against the class collection.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClassID   string             `bson:"classId" json:"classId"`
	ClassName string             `bson:"className" json:"className"`
	Price     float64            `bson:"price" json:"price"`
	Email     string             `bson:"email" json:"email"`
}
