// Package salary implements the grade-based salary derivation used by the
// payroll service. All amounts are decimal; the calculator is pure and does
// no I/O.
package salary

import (
	"github.com/shopspring/decimal"
)

// Grade bounds. Grade 1 is the most senior tier, grade 6 the base pay tier.
const (
	MinGrade = 1
	MaxGrade = 6
)

// BaseSalaryDescription is the fixed key of the singleton base salary record.
const BaseSalaryDescription = "lowest_grade_salary"

// gradeCaps holds the maximum headcount per grade, indexed by grade-1.
var gradeCaps = [MaxGrade]int{1, 1, 2, 2, 2, 2}

var (
	gradeStep     = decimal.NewFromInt(5000)
	houseRentRate = decimal.NewFromFloat(0.20)
	medicalRate   = decimal.NewFromFloat(0.15)
)

// Breakdown is the salary decomposition for a single grade.
type Breakdown struct {
	Basic     decimal.Decimal `json:"basicSalary"`
	HouseRent decimal.Decimal `json:"houseRent"`
	Medical   decimal.Decimal `json:"medicalAllowance"`
	Total     decimal.Decimal `json:"totalSalary"`
}

// Compute derives the salary breakdown for a grade from the grade-6 base
// amount:
//
//	basic     = base + (6 - grade) * 5000
//	houseRent = 0.20 * basic
//	medical   = 0.15 * basic
//	total     = basic + houseRent + medical
//
// The grade must already be validated by the caller; Compute performs no
// bounds clamping.
func Compute(base decimal.Decimal, grade int) Breakdown {
	basic := base.Add(decimal.NewFromInt(int64(MaxGrade - grade)).Mul(gradeStep))
	houseRent := basic.Mul(houseRentRate).Round(2)
	medical := basic.Mul(medicalRate).Round(2)

	return Breakdown{
		Basic:     basic,
		HouseRent: houseRent,
		Medical:   medical,
		Total:     basic.Add(houseRent).Add(medical),
	}
}

// ValidGrade reports whether the grade is within [MinGrade, MaxGrade].
func ValidGrade(grade int) bool {
	return grade >= MinGrade && grade <= MaxGrade
}

// CapForGrade returns the headcount cap for a grade. The grade must be valid.
func CapForGrade(grade int) int {
	return gradeCaps[grade-1]
}
