package calc

import (
	"strings"
	"testing"
)

func validInput() Input {
	return Input{
		ProjectType:     "Kitchen Remodel",
		LaborHours:      120,
		MaterialCost:    25000,
		CrewSize:        4,
		ProjectDuration: 14,
	}
}

func TestValidateInputs_Valid(t *testing.T) {
	v := ValidateInputs(validInput())
	if !v.Valid {
		t.Fatalf("expected valid, got errors: %+v", v.Errors)
	}
	if len(v.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", v.Errors)
	}
}

func TestValidateInputs_MissingFields(t *testing.T) {
	v := ValidateInputs(Input{})
	if v.Valid {
		t.Fatalf("expected invalid for zero input")
	}

	for _, field := range []string{"projectType", "laborHours", "materialCost", "crewSize", "projectDuration"} {
		if _, ok := v.Errors[field]; !ok {
			t.Fatalf("expected an error for %q, got %+v", field, v.Errors)
		}
	}
}

func TestValidateInputs_ZeroMaterialCostRejected(t *testing.T) {
	in := validInput()
	in.MaterialCost = 0

	v := ValidateInputs(in)
	if v.Valid {
		t.Fatalf("expected zero material cost to be rejected")
	}
	if _, ok := v.Errors["materialCost"]; !ok {
		t.Fatalf("expected a materialCost error, got %+v", v.Errors)
	}
}

func TestValidateInputs_NegativeMaterialCostRejected(t *testing.T) {
	in := validInput()
	in.MaterialCost = -100

	if v := ValidateInputs(in); v.Valid {
		t.Fatalf("expected negative material cost to be rejected")
	}
}

func TestValidateInputs_ImplausibleHoursPerDay(t *testing.T) {
	// 500 hours across 2 people over 5 days is 50 hours per person per day.
	in := Input{
		ProjectType:     "Painting",
		LaborHours:      500,
		MaterialCost:    2000,
		CrewSize:        2,
		ProjectDuration: 5,
	}

	v := ValidateInputs(in)
	if v.Valid {
		t.Fatalf("expected implausible labor hours to be rejected")
	}
	msg, ok := v.Errors["laborHours"]
	if !ok {
		t.Fatalf("expected a laborHours error, got %+v", v.Errors)
	}
	if !strings.Contains(msg, "too high") {
		t.Fatalf("laborHours error %q does not mention %q", msg, "too high")
	}
}

func TestValidateInputs_HoursPerDayBoundary(t *testing.T) {
	// Exactly 12 hours per person per day is still allowed.
	in := Input{
		ProjectType:     "Roofing",
		LaborHours:      120,
		MaterialCost:    5000,
		CrewSize:        2,
		ProjectDuration: 5,
	}
	if v := ValidateInputs(in); !v.Valid {
		t.Fatalf("expected 12 h/day to pass, got errors: %+v", v.Errors)
	}
}

func TestValidateInputs_UnusuallyHighMaterialCost(t *testing.T) {
	in := validInput()
	in.MaterialCost = 2_000_000

	v := ValidateInputs(in)
	if v.Valid {
		t.Fatalf("expected material cost over the ceiling to be rejected")
	}
	msg, ok := v.Errors["materialCost"]
	if !ok {
		t.Fatalf("expected a materialCost error, got %+v", v.Errors)
	}
	if !strings.Contains(msg, "unusually high") {
		t.Fatalf("materialCost error %q does not mention %q", msg, "unusually high")
	}
}
