package memory

import (
	"context"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/jmanzanog/employee-roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func employeeIDs(employees []domain.Employee) []int {
	ids := make([]int, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestEmployeeRepository_EmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	employees, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	removed, err := repo.DeleteByID(ctx, 99)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, repo.SortBySalaryDesc(ctx))
}

func TestEmployeeRepository_SortScenario(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	require.NoError(t, repo.Add(ctx, domain.NewEmployee("Ann", 31, 1, 50000, "HR")))
	require.NoError(t, repo.Add(ctx, domain.NewEmployee("Ben", 45, 2, 70000, "IT")))
	require.NoError(t, repo.Add(ctx, domain.NewEmployee("Cid", 28, 3, 60000, "Sales")))

	employees, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, employeeIDs(employees))

	require.NoError(t, repo.SortBySalaryDesc(ctx))

	employees, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, employeeIDs(employees))
	assert.Equal(t, []float64{70000, 60000, 50000}, []float64{employees[0].Salary, employees[1].Salary, employees[2].Salary})
}

func TestEmployeeRepository_FindByID_ReturnsFirstDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	require.NoError(t, repo.Add(ctx, domain.NewEmployee("First", 30, 5, 40000, "HR")))
	require.NoError(t, repo.Add(ctx, domain.NewEmployee("Second", 30, 5, 90000, "HR")))

	found, err := repo.FindByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "First", found.Name)

	// After sorting the higher salary comes first.
	require.NoError(t, repo.SortBySalaryDesc(ctx))
	found, err = repo.FindByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Second", found.Name)
}

func TestEmployeeRepository_DeleteByID_RemovesAllMatches(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	require.NoError(t, repo.Add(ctx, domain.NewEmployee("A", 20, 1, 1000, "X")))
	require.NoError(t, repo.Add(ctx, domain.NewEmployee("B", 21, 2, 2000, "X")))
	require.NoError(t, repo.Add(ctx, domain.NewEmployee("C", 22, 1, 3000, "X")))

	removed, err := repo.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	employees, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, employeeIDs(employees))

	removed, err = repo.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestEmployeeRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	require.NoError(t, repo.Add(ctx, domain.NewEmployee("Dana", 33, 4, 45000, "Legal")))

	employees, err := repo.FindAll(ctx)
	require.NoError(t, err)
	employees[0].Name = "Mallory"

	found, err := repo.FindByID(ctx, 4)
	require.NoError(t, err)
	found.Salary = 1

	stored, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dana", stored[0].Name)
	assert.Equal(t, 45000.0, stored[0].Salary)
}

func TestEmployeeRepository_SortBySalaryDesc_SpecialValues(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	for _, e := range []domain.Employee{
		domain.NewEmployee("neg-zero", 20, 1, math.Copysign(0, -1), "X"),
		domain.NewEmployee("low", 20, 2, 100, "X"),
		domain.NewEmployee("nan-a", 20, 3, math.NaN(), "X"),
		domain.NewEmployee("zero", 20, 4, 0, "X"),
		domain.NewEmployee("inf", 20, 5, math.Inf(1), "X"),
		domain.NewEmployee("nan-b", 20, 6, math.NaN(), "X"),
		domain.NewEmployee("neg-inf", 20, 7, math.Inf(-1), "X"),
	} {
		require.NoError(t, repo.Add(ctx, e))
	}

	require.NoError(t, repo.SortBySalaryDesc(ctx))

	employees, err := repo.FindAll(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"nan-a", "nan-b", "inf", "low", "zero", "neg-zero", "neg-inf"}, names)
}

func TestCompareSalary(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected int
	}{
		{"less", 1, 2, -1},
		{"greater", 2, 1, 1},
		{"equal", 5, 5, 0},
		{"negative zero below zero", math.Copysign(0, -1), 0, -1},
		{"zero above negative zero", 0, math.Copysign(0, -1), 1},
		{"nan above infinity", math.NaN(), math.Inf(1), 1},
		{"infinity below nan", math.Inf(1), math.NaN(), -1},
		{"nan equals nan", math.NaN(), math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compareSalary(tt.a, tt.b))
		})
	}
}

// --- Properties ---

// employeeGen draws from a small ID and salary space so duplicates and
// salary ties are common.
func employeeGen() *rapid.Generator[domain.Employee] {
	return rapid.Custom(func(t *rapid.T) domain.Employee {
		return domain.Employee{
			ID:         rapid.IntRange(0, 6).Draw(t, "id"),
			Name:       rapid.StringMatching(`[A-Z][a-z]{0,7}`).Draw(t, "name"),
			Age:        rapid.IntRange(18, 70).Draw(t, "age"),
			Salary:     float64(rapid.IntRange(0, 4).Draw(t, "salary")) * 10000,
			Department: rapid.SampledFrom([]string{"HR", "IT", "Sales"}).Draw(t, "department"),
		}
	})
}

// tagged gives every drawn employee a unique name so its original position
// can be recovered after reordering.
func tagged(employees []domain.Employee) []domain.Employee {
	for i := range employees {
		employees[i].Name = fmt.Sprintf("emp-%03d", i)
	}
	return employees
}

func seed(t *rapid.T, employees []domain.Employee) *EmployeeRepository {
	repo := NewEmployeeRepository()
	for _, e := range employees {
		if err := repo.Add(context.Background(), e); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	return repo
}

func TestEmployeeRepository_PreservesInsertionOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		added := rapid.SliceOf(employeeGen()).Draw(t, "employees")
		repo := seed(t, added)

		listed, err := repo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		if !slices.Equal(added, listed) {
			t.Fatalf("expected %v, got %v", added, listed)
		}
	})
}

func TestEmployeeRepository_FindByIDReturnsFirstMatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		added := tagged(rapid.SliceOf(employeeGen()).Draw(t, "employees"))
		id := rapid.IntRange(0, 6).Draw(t, "target")
		repo := seed(t, added)

		found, err := repo.FindByID(context.Background(), id)

		idx := slices.IndexFunc(added, func(e domain.Employee) bool { return e.ID == id })
		if idx < 0 {
			if err != domain.ErrEmployeeNotFound {
				t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found != added[idx] {
			t.Fatalf("expected %v, got %v", added[idx], found)
		}
	})
}

func TestEmployeeRepository_SortIsStableAndIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		added := tagged(rapid.SliceOf(employeeGen()).Draw(t, "employees"))
		repo := seed(t, added)
		ctx := context.Background()

		position := make(map[string]int, len(added))
		for i, e := range added {
			position[e.Name] = i
		}

		if err := repo.SortBySalaryDesc(ctx); err != nil {
			t.Fatalf("SortBySalaryDesc failed: %v", err)
		}
		once, _ := repo.FindAll(ctx)

		if len(once) != len(added) {
			t.Fatalf("expected %d employees, got %d", len(added), len(once))
		}
		for i := 1; i < len(once); i++ {
			prev, cur := once[i-1], once[i]
			if prev.Salary < cur.Salary {
				t.Fatalf("salaries out of order at %d: %v before %v", i, prev.Salary, cur.Salary)
			}
			if prev.Salary == cur.Salary && position[prev.Name] > position[cur.Name] {
				t.Fatalf("equal salaries reordered at %d: %s before %s", i, prev.Name, cur.Name)
			}
		}

		if err := repo.SortBySalaryDesc(ctx); err != nil {
			t.Fatalf("SortBySalaryDesc failed: %v", err)
		}
		twice, _ := repo.FindAll(ctx)
		if !slices.Equal(once, twice) {
			t.Fatalf("second sort changed order: %v vs %v", once, twice)
		}
	})
}

func TestEmployeeRepository_DeleteRemovesEveryMatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		added := rapid.SliceOf(employeeGen()).Draw(t, "employees")
		id := rapid.IntRange(0, 6).Draw(t, "target")
		repo := seed(t, added)
		ctx := context.Background()

		expected := slices.DeleteFunc(slices.Clone(added), func(e domain.Employee) bool { return e.ID == id })
		wantRemoved := len(expected) < len(added)

		removed, err := repo.DeleteByID(ctx, id)
		if err != nil {
			t.Fatalf("DeleteByID failed: %v", err)
		}
		if removed != wantRemoved {
			t.Fatalf("expected removed=%v, got %v", wantRemoved, removed)
		}

		remaining, _ := repo.FindAll(ctx)
		if !slices.Equal(expected, remaining) {
			t.Fatalf("expected %v, got %v", expected, remaining)
		}

		again, err := repo.DeleteByID(ctx, id)
		if err != nil {
			t.Fatalf("DeleteByID failed: %v", err)
		}
		if again {
			t.Fatal("second delete reported a removal")
		}
	})
}
