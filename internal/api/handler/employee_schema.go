package handler

import "time"

type createEmployeeRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Position string  `json:"position" validate:"required"`
	Salary   float64 `json:"salary"   validate:"required,gt=0"`
}

// updateEmployeeRequest carries a partial update; absent fields are left
// unchanged. id and created_at are not accepted — identity and creation time
// are immutable.
type updateEmployeeRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"    validate:"omitempty,email"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary"   validate:"omitempty,gt=0"`
}

// employeeResponse is the transport view of an employee record, kept separate
// from the domain type so the JSON contract is not coupled to internal changes.
type employeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	Salary    float64   `json:"salary"`
	CreatedAt time.Time `json:"created_at"`
}
