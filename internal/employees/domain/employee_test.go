package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/stretchr/testify/require"
)

func sample() domain.Employee {
	return domain.Employee{
		ID:          "01HZX0000000000000000000AA",
		EmployeeID:  "E123",
		Name:        "John Doe",
		Department:  "Engineering",
		Salary:      75000,
		JoiningDate: domain.NewDate(2023, time.January, 15),
		Skills:      []string{"Go", "SQL"},
	}
}

func ptr[T any](v T) *T { return &v }

func TestPatchApply(t *testing.T) {
	t.Run("empty patch is identity", func(t *testing.T) {
		p := domain.EmployeePatch{}
		require.True(t, p.IsEmpty())
		require.Empty(t, p.Fields())
		require.Equal(t, sample(), p.Apply(sample()))
	})

	t.Run("only present fields change", func(t *testing.T) {
		p := domain.EmployeePatch{Salary: ptr(80000.0)}
		got := p.Apply(sample())

		want := sample()
		want.Salary = 80000
		require.Equal(t, want, got)
		require.Equal(t, []string{"salary"}, p.Fields())
	})

	t.Run("every field", func(t *testing.T) {
		p := domain.EmployeePatch{
			Name:        ptr("Jane Roe"),
			Department:  ptr("Finance"),
			Salary:      ptr(0.0),
			JoiningDate: ptr(domain.NewDate(2024, time.March, 1)),
			Skills:      ptr([]string{}),
		}
		got := p.Apply(sample())

		require.Equal(t, "Jane Roe", got.Name)
		require.Equal(t, "Finance", got.Department)
		require.Zero(t, got.Salary)
		require.Equal(t, "2024-03-01", got.JoiningDate.String())
		require.NotNil(t, got.Skills)
		require.Empty(t, got.Skills)
		require.Equal(t, "E123", got.EmployeeID)
		require.Equal(t, []string{"name", "department", "salary", "joining_date", "skills"}, p.Fields())
	})

	t.Run("result does not alias inputs", func(t *testing.T) {
		skills := []string{"Rust"}
		p := domain.EmployeePatch{Skills: &skills}
		orig := sample()
		got := p.Apply(orig)

		skills[0] = "changed"
		got.Skills = append(got.Skills, "extra")
		require.Equal(t, []string{"Rust", "extra"}, got.Skills)
		require.Equal(t, []string{"Go", "SQL"}, orig.Skills)
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int64
	}{
		{25, 10, 3},
		{30, 10, 3},
		{1, 100, 1},
		{0, 10, 0},
		{100, 1, 100},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, domain.TotalPages(tt.total, tt.size), "%d/%d", tt.total, tt.size)
	}
}
