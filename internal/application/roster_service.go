package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmanzanog/employee-roster/internal/domain"
)

type RosterService struct {
	repo         domain.EmployeeRepository
	bonusPercent domain.Decimal
}

func NewRosterService(repo domain.EmployeeRepository, bonusPercent domain.Decimal) *RosterService {
	return &RosterService{
		repo:         repo,
		bonusPercent: bonusPercent,
	}
}

func (s *RosterService) AddEmployee(ctx context.Context, name string, age, id int, salary float64, department string) (*domain.Employee, error) {
	employee := domain.NewEmployee(name, age, id, salary, department)

	if err := s.repo.Add(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to add employee: %w", err)
	}

	slog.InfoContext(ctx, "Employee added", "employee_id", id, "department", department)
	return &employee, nil
}

func (s *RosterService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *RosterService) GetEmployee(ctx context.Context, id int) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			slog.DebugContext(ctx, "Employee not found", "employee_id", id)
		}
		return nil, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return &employee, nil
}

func (s *RosterService) SortBySalary(ctx context.Context) error {
	if err := s.repo.SortBySalaryDesc(ctx); err != nil {
		return fmt.Errorf("failed to sort employees: %w", err)
	}

	slog.InfoContext(ctx, "Employees sorted by salary")
	return nil
}

// RemoveEmployee deletes every employee with the given ID. It reports
// domain.ErrEmployeeNotFound when nothing matched.
func (s *RosterService) RemoveEmployee(ctx context.Context, id int) error {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to remove employee %d: %w", id, err)
	}
	if !removed {
		return fmt.Errorf("failed to remove employee %d: %w", id, domain.ErrEmployeeNotFound)
	}

	slog.InfoContext(ctx, "Employee removed", "employee_id", id)
	return nil
}

// Bonus computes the configured bonus for the first employee with the given ID.
func (s *RosterService) Bonus(ctx context.Context, id int) (domain.Decimal, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return domain.Zero, err
	}
	return s.EmployeeBonus(ctx, *employee)
}

// EmployeeBonus computes the configured bonus for an already fetched employee.
func (s *RosterService) EmployeeBonus(ctx context.Context, employee domain.Employee) (domain.Decimal, error) {
	bonus, err := employee.Bonus(s.bonusPercent)
	if err != nil {
		slog.WarnContext(ctx, "Bonus calculation failed", "employee_id", employee.ID, "error", err)
		return domain.Zero, fmt.Errorf("failed to calculate bonus: %w", err)
	}
	return bonus, nil
}
