package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmanzanog/employee-roster/internal/domain"
)

type menuOption struct {
	choice int
	label  string
	run    func(ctx context.Context) error
}

func setupMenu(handler *Handler) []menuOption {
	return []menuOption{
		{1, "Add Employee", handler.AddEmployee},
		{2, "Display All Employees", handler.DisplayAll},
		{3, "Search Employee by ID", handler.SearchByID},
		{4, "Sort Employees by Salary", handler.SortBySalary},
		{5, "Delete Employee", handler.DeleteByID},
		{6, "Exit", handler.Exit},
	}
}

// Shell is the interactive menu loop in front of a RosterService.
type Shell struct {
	handler *Handler
	menu    []menuOption
}

func NewShell(rosterService RosterService, in io.Reader, out io.Writer) *Shell {
	handler := NewHandler(rosterService, in, out)
	return &Shell{
		handler: handler,
		menu:    setupMenu(handler),
	}
}

// Run shows the menu until the user exits or input runs out. Bad input and
// unknown employees are reported and the menu is shown again; only a failure
// to read input is returned.
func (s *Shell) Run(ctx context.Context) error {
	out := s.handler.out

	for {
		s.printMenu()

		choice, err := s.handler.in.readInt("Enter your choice: ")
		if err == nil {
			option, ok := s.lookup(choice)
			if !ok {
				fmt.Fprintln(out, "Invalid choice! Try again.")
				continue
			}
			err = option.run(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out, "\nExiting system...")
			slog.InfoContext(ctx, "Session ended at end of input")
			return nil
		case errors.Is(err, domain.ErrInvalidInput):
			slog.WarnContext(ctx, "Invalid input", "error", err)
			fmt.Fprintln(out, "Error: Invalid input. Try again.")
		default:
			var readErr *inputError
			if errors.As(err, &readErr) {
				return err
			}
			slog.ErrorContext(ctx, "Operation failed", "error", err)
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func (s *Shell) printMenu() {
	out := s.handler.out
	fmt.Fprintln(out, "\n========== Employee Management System ==========")
	for _, option := range s.menu {
		fmt.Fprintf(out, "%d. %s\n", option.choice, option.label)
	}
}

func (s *Shell) lookup(choice int) (menuOption, bool) {
	for _, option := range s.menu {
		if option.choice == choice {
			return option, true
		}
	}
	return menuOption{}, false
}
