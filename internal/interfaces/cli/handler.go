package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jmanzanog/employee-roster/internal/domain"
)

// RosterService defines the interface for roster operations
type RosterService interface {
	AddEmployee(ctx context.Context, name string, age, id int, salary float64, department string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id int) (*domain.Employee, error)
	SortBySalary(ctx context.Context) error
	RemoveEmployee(ctx context.Context, id int) error
	EmployeeBonus(ctx context.Context, employee domain.Employee) (domain.Decimal, error)
}

// errExit ends the menu loop.
var errExit = errors.New("exit requested")

type Handler struct {
	rosterService RosterService
	in            *prompter
	out           io.Writer
}

func NewHandler(rosterService RosterService, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		rosterService: rosterService,
		in:            newPrompter(in, out),
		out:           out,
	}
}

func (h *Handler) AddEmployee(ctx context.Context) error {
	name, err := h.in.readLine("Enter Name: ")
	if err != nil {
		return err
	}
	age, err := h.in.readInt("Enter Age: ")
	if err != nil {
		return err
	}
	id, err := h.in.readInt("Enter Employee ID: ")
	if err != nil {
		return err
	}
	salary, err := h.in.readFloat("Enter Salary: ")
	if err != nil {
		return err
	}
	department, err := h.in.readLine("Enter Department: ")
	if err != nil {
		return err
	}

	if _, err := h.rosterService.AddEmployee(ctx, name, age, id, salary, department); err != nil {
		return err
	}

	fmt.Fprintln(h.out, "Employee added successfully!")
	return nil
}

func (h *Handler) DisplayAll(ctx context.Context) error {
	employees, err := h.rosterService.ListEmployees(ctx)
	if err != nil {
		return err
	}

	if len(employees) == 0 {
		fmt.Fprintln(h.out, "No employees found.")
		return nil
	}

	fmt.Fprintln(h.out, "\n--- Employee List ---")
	for _, e := range employees {
		h.printEmployee(e)
	}
	return nil
}

func (h *Handler) SearchByID(ctx context.Context) error {
	id, err := h.in.readInt("Enter Employee ID to search: ")
	if err != nil {
		return err
	}

	employee, err := h.rosterService.GetEmployee(ctx, id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		fmt.Fprintln(h.out, "Employee not found!")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(h.out, "\nEmployee found:")
	h.printEmployee(*employee)

	bonus, err := h.rosterService.EmployeeBonus(ctx, *employee)
	if err != nil {
		fmt.Fprintln(h.out, "Bonus: n/a")
		return nil
	}
	fmt.Fprintf(h.out, "Bonus: %s\n", bonus)
	return nil
}

func (h *Handler) SortBySalary(ctx context.Context) error {
	if err := h.rosterService.SortBySalary(ctx); err != nil {
		return err
	}

	fmt.Fprintln(h.out, "Sorted employees by salary (High -> Low)")
	return nil
}

func (h *Handler) DeleteByID(ctx context.Context) error {
	id, err := h.in.readInt("Enter Employee ID to delete: ")
	if err != nil {
		return err
	}

	err = h.rosterService.RemoveEmployee(ctx, id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		fmt.Fprintln(h.out, "Employee not found!")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(h.out, "Employee deleted successfully!")
	return nil
}

func (h *Handler) Exit(ctx context.Context) error {
	fmt.Fprintln(h.out, "Exiting system...")
	slog.InfoContext(ctx, "Session ended by user")
	return errExit
}

// printEmployee writes one record as "id | name | age | department | salary".
func (h *Handler) printEmployee(e domain.Employee) {
	fmt.Fprintf(h.out, "%d | %s | %d | %s | %s\n",
		e.ID, e.Name, e.Age, e.Department, strconv.FormatFloat(e.Salary, 'f', 2, 64))
}
