package salary_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snigdah/E-Banking-System/internal/payroll/salary"
)

func TestCompute_Grade3Scenario(t *testing.T) {
	base := decimal.NewFromInt(10000)

	got := salary.Compute(base, 3)

	assert.True(t, got.Basic.Equal(decimal.NewFromInt(15000)), "basic = %s", got.Basic)
	assert.True(t, got.HouseRent.Equal(decimal.NewFromInt(3000)), "houseRent = %s", got.HouseRent)
	assert.True(t, got.Medical.Equal(decimal.NewFromInt(2250)), "medical = %s", got.Medical)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(20250)), "total = %s", got.Total)
}

func TestCompute_FormulaForAllGrades(t *testing.T) {
	base := decimal.NewFromFloat(12345.67)
	step := decimal.NewFromInt(5000)

	for grade := salary.MinGrade; grade <= salary.MaxGrade; grade++ {
		got := salary.Compute(base, grade)

		wantBasic := base.Add(decimal.NewFromInt(int64(salary.MaxGrade - grade)).Mul(step))
		require.True(t, got.Basic.Equal(wantBasic), "grade %d basic = %s, want %s", grade, got.Basic, wantBasic)

		wantTotal := got.Basic.Add(got.HouseRent).Add(got.Medical)
		require.True(t, got.Total.Equal(wantTotal), "grade %d total = %s, want %s", grade, got.Total, wantTotal)

		// total = 1.35 * basic when the rate components do not round
		wantScaled := wantBasic.Mul(decimal.NewFromFloat(1.35)).Round(2)
		require.True(t, got.Total.Sub(wantScaled).Abs().LessThanOrEqual(decimal.NewFromFloat(0.01)),
			"grade %d total = %s, want ~%s", grade, got.Total, wantScaled)
	}
}

func TestCompute_TotalDecreasesWithGrade(t *testing.T) {
	base := decimal.NewFromInt(10000)

	prev := salary.Compute(base, salary.MinGrade).Total
	for grade := salary.MinGrade + 1; grade <= salary.MaxGrade; grade++ {
		cur := salary.Compute(base, grade).Total
		assert.True(t, cur.LessThan(prev), "total for grade %d (%s) should be below grade %d (%s)", grade, cur, grade-1, prev)
		prev = cur
	}
}

func TestValidGrade(t *testing.T) {
	tests := []struct {
		grade int
		want  bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{6, true},
		{7, false},
		{-1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, salary.ValidGrade(tt.grade), "grade %d", tt.grade)
	}
}

func TestCapForGrade(t *testing.T) {
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 2, 6: 2}
	for grade, cap := range want {
		assert.Equal(t, cap, salary.CapForGrade(grade), "grade %d", grade)
	}
}
