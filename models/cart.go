package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineItem is a product entry inside a cart or an order.
type LineItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	SellerID  primitive.ObjectID `bson:"sellerId" json:"sellerId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
}

// Cart is keyed by the id of the user that owns it, so there is at most one
// cart per user. Products holds at most one line item per productId; the
// cart controller enforces that before writing.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Products  []LineItem         `bson:"products" json:"products"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
