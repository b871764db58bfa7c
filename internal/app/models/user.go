package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is keyed by email. Role is either "admin" or absent.
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email string             `json:"email" bson:"email"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}
