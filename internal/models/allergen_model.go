package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Allergen is a single allergen entry owned by an email.
type Allergen struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Severity string             `json:"severity,omitempty" bson:"severity,omitempty"`
	Notes    string             `json:"notes,omitempty" bson:"notes,omitempty"`
}
