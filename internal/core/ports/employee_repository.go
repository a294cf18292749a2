package ports

import (
	"context"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
// The repository owns the canonical record; all returns are copies.
type EmployeeRepository interface {
	// Create inserts the employee and returns it with its assigned ID.
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	// List returns all employees ordered newest first (created_at descending,
	// insertion order as tie-break).
	List(ctx context.Context) ([]*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// Update applies the provided fields and returns the updated record.
	// Nil fields are left untouched; ID and CreatedAt are never modified.
	Update(ctx context.Context, id string, fields EmployeeFields) (*domain.Employee, error)
	// Delete removes the employee. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// EmployeeFields carries a partial set of mutable employee fields.
// Nil pointers mean "leave unchanged".
type EmployeeFields struct {
	Name     *string
	Email    *string
	Position *string
	Salary   *float64
}

// Empty reports whether no field is set.
func (f EmployeeFields) Empty() bool {
	return f.Name == nil && f.Email == nil && f.Position == nil && f.Salary == nil
}
