package domain

import "time"

// Employee is the core resource managed by the API. ID and CreatedAt are
// assigned at creation and immutable afterwards.
type Employee struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Position  string    `json:"position" bson:"position"`
	Salary    float64   `json:"salary" bson:"salary"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
