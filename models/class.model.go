package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class represents a sellable class listing (the "product" of the marketplace)
type Class struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ToyName           string             `bson:"toyName" json:"toyName"`
	PhotoURL          string             `bson:"photoUrl" json:"photoUrl"`
	SellerName        string             `bson:"sellerName" json:"sellerName"`
	SellerEmail       string             `bson:"sellerEmail" json:"sellerEmail"`
	Price             float64            `bson:"price" json:"price"`
	Rating            float64            `bson:"rating" json:"rating"`
	AvailableQuantity int                `bson:"availableQuantity" json:"availableQuantity"`
	DetailDescription string             `bson:"detailDescription" json:"detailDescription"`
	Category          string             `bson:"category" json:"category"`
}
