package ports

import (
	"context"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
)

// CreateEmployeeInput carries all data needed to create an employee record.
type CreateEmployeeInput struct {
	Name     string
	Email    string
	Position string
	Salary   float64
}

// UpdateEmployeeInput carries a partial update. Nil fields are left as-is.
type UpdateEmployeeInput struct {
	Name     *string
	Email    *string
	Position *string
	Salary   *float64
}

// EmployeeService defines use-case operations for employee records. Callers
// are assumed to have already passed the authentication and role gates.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
