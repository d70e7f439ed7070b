package memory

import (
	"context"
	"math"
	"slices"
	"sync"

	"github.com/jmanzanog/employee-roster/internal/domain"
)

// EmployeeRepository keeps the roster as one ordered slice. Records are
// stored and returned by value, so callers never share memory with it.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: make([]domain.Employee, 0),
	}
}

func (r *EmployeeRepository) Add(ctx context.Context, employee domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.employees = append(r.employees, employee)
	return nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]domain.Employee, len(r.employees))
	copy(employees, r.employees)

	return employees, nil
}

// FindByID returns the first record in current order whose ID matches.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}

	return domain.Employee{}, domain.ErrEmployeeNotFound
}

// SortBySalaryDesc reorders the roster highest salary first, NaN salaries
// ahead of everything. Equal salaries keep their previous relative order.
func (r *EmployeeRepository) SortBySalaryDesc(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slices.SortStableFunc(r.employees, func(a, b domain.Employee) int {
		return compareSalary(b.Salary, a.Salary)
	})
	return nil
}

// DeleteByID removes every record with the given ID and reports whether
// anything was removed.
func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.employees)
	r.employees = slices.DeleteFunc(r.employees, func(e domain.Employee) bool {
		return e.ID == id
	})

	return len(r.employees) < before, nil
}

// compareSalary is a total order on salaries: -0 sorts below +0 and NaN above
// every other value, including +Inf.
func compareSalary(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}

	aNeg, bNeg := math.Signbit(a), math.Signbit(b)
	switch {
	case aNeg == bNeg:
		return 0
	case aNeg:
		return -1
	default:
		return 1
	}
}
