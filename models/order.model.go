package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single line of an order as sent by the frontend cart.
type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int64   `bson:"quantity" json:"quantity"`
}

// Order represents a placed food order
type Order struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string                 `bson:"user_id" json:"userId"`
	Items     []OrderItem            `bson:"items" json:"items"`
	Amount    float64                `bson:"amount" json:"amount"`
	Address   map[string]interface{} `bson:"address" json:"address"` // free-form address document from the frontend
	Payment   bool                   `bson:"payment" json:"payment"`
	Status    string                 `bson:"status" json:"status"` // e.g. "Food Processing", "Out for delivery"
	CreatedAt time.Time              `bson:"created_at" json:"createdAt"`
}

// DefaultStatus is assigned to every newly placed order.
const DefaultStatus = "Food Processing"
