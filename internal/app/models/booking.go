package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves one slot of one treatment on one date. Treatment
// references Service.Name and Slot should come from that service's slot
// list; neither is enforced at the store level.
type Booking struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Treatment   string             `json:"treatment" bson:"treatment"`
	Date        string             `json:"date" bson:"date"`
	Slot        string             `json:"slot" bson:"slot"`
	Patient     string             `json:"patient" bson:"patient"`
	PatientName string             `json:"patientName,omitempty" bson:"patientName,omitempty"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
}
