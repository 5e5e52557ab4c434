package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile represents a user's nutrition profile. There is exactly one
// profile per email; the email field carries a unique index in Mongo.
type Profile struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Name          string             `json:"name,omitempty" bson:"name,omitempty"`
	Age           int                `json:"age,omitempty" bson:"age,omitempty"`
	Gender        string             `json:"gender,omitempty" bson:"gender,omitempty"`
	HeightCm      float64            `json:"heightCm,omitempty" bson:"heightCm,omitempty"`
	WeightKg      float64            `json:"weightKg,omitempty" bson:"weightKg,omitempty"`
	ActivityLevel string             `json:"activityLevel,omitempty" bson:"activityLevel,omitempty"`
	Goal          string             `json:"goal,omitempty" bson:"goal,omitempty"`
	DailyCalories float64            `json:"dailyCalories,omitempty" bson:"dailyCalories,omitempty"`
	Preferences   []string           `json:"preferences,omitempty" bson:"preferences,omitempty"`
}
