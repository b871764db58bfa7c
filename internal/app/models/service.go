package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offering with its fixed catalog of time slots.
// Documents are seeded outside this service and are read-only here.
type Service struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Slots []string           `json:"slots" bson:"slots"`
}
