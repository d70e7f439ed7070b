package domain

import "context"

// EmployeeRepository defines the interface for roster storage.
// Implementations keep records in a single ordered sequence: insertion order
// until SortBySalaryDesc reorders it, after which the sorted order sticks.
// All methods accept context.Context so callers can carry request-scoped
// values such as the logging session.
type EmployeeRepository interface {
	Add(ctx context.Context, employee Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int) (Employee, error)
	SortBySalaryDesc(ctx context.Context) error
	DeleteByID(ctx context.Context, id int) (bool, error)
}
