package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MealPlan is a planned meal entry owned by an email. Entries are
// append-only; there is no update or delete for meal plans.
type MealPlan struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Day      string             `json:"day,omitempty" bson:"day,omitempty"`
	MealType string             `json:"mealType,omitempty" bson:"mealType,omitempty"`
	DishName string             `json:"dishName,omitempty" bson:"dishName,omitempty"`
	Calories float64            `json:"calories,omitempty" bson:"calories,omitempty"`
	Notes    string             `json:"notes,omitempty" bson:"notes,omitempty"`
}
