package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidInput     = errors.New("invalid input")
)

// DefaultBonusPercent is the share of the salary paid out as bonus when no
// other percentage is configured.
const DefaultBonusPercent = 10

// Employee is a single roster entry. IDs are supplied by the caller and are
// not required to be unique.
type Employee struct {
	ID         int
	Name       string
	Age        int
	Salary     float64
	Department string
}

func NewEmployee(name string, age, id int, salary float64, department string) Employee {
	return Employee{
		ID:         id,
		Name:       name,
		Age:        age,
		Salary:     salary,
		Department: department,
	}
}

// Bonus returns percent of the salary, rounded half-up to cents.
func (e Employee) Bonus(percent Decimal) (Decimal, error) {
	salary, err := NewDecimalFromFloat(e.Salary)
	if err != nil {
		return Zero, fmt.Errorf("salary of employee %d: %w", e.ID, err)
	}

	scaled, err := salary.Mul(percent)
	if err != nil {
		return Zero, err
	}

	bonus, err := scaled.Div(NewDecimalFromInt(100))
	if err != nil {
		return Zero, err
	}

	return bonus.Round(2)
}
