package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/ports"
)

// EmployeeService implements employee CRUD use-cases over the repository.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	employee := &domain.Employee{
		Name:      input.Name,
		Email:     input.Email,
		Position:  input.Position,
		Salary:    input.Salary,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().Str("employee_id", created.ID).Str("name", created.Name).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the provided mutable fields. ID and CreatedAt are
// immutable and never part of the update.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	updated, err := s.repo.Update(ctx, id, ports.EmployeeFields{
		Name:     input.Name,
		Email:    input.Email,
		Position: input.Position,
		Salary:   input.Salary,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", updated.ID).Msg("employee updated")
	return updated, nil
}

// Delete removes the employee. Succeeds even when the id does not exist;
// clients cannot tell "deleted" from "never existed".
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("employee_id", id).Msg("failed to delete employee")
		return err
	}
	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}
