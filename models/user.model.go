package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the system
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role"` // "user" or "admin"
	CartData map[string]int     `bson:"cart_data" json:"cartData"`
}

// IsAdmin reports whether the user may call the admin-only order endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
