package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodLog is one logged dish. All business fields are required; Timestamp
// is assigned server-side at write time and never taken from the client.
type FoodLog struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	DishName    string             `json:"dishName" bson:"dishName"`
	Calories    float64            `json:"calories" bson:"calories"`
	Ingredients string             `json:"ingredients" bson:"ingredients"`
	ServingSize string             `json:"servingSize" bson:"servingSize"`
	Healthiness string             `json:"healthiness" bson:"healthiness"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
}

// DayCalories is one element of the weekly summary: a 3-letter day label
// and the calorie total for that day. The summary is always 7 elements,
// Sunday through Saturday, zero-filled for days with no logs.
type DayCalories struct {
	Day      string  `json:"day"`
	Calories float64 `json:"calories"`
}
