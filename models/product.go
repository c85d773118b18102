package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is owned by exactly one seller. Stock counts the units still
// available for purchase.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID  primitive.ObjectID `bson:"sellerId" json:"sellerId"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Stock     int                `bson:"stock" json:"stock"`
	Deleted   bool               `bson:"deleted" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
