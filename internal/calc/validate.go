package calc

// Validation is the outcome of input validation. Errors is keyed by input
// field name and holds human-readable messages.
type Validation struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// ValidateInputs checks in against the domain constraints. Failures come back
// as field-keyed messages; nothing panics and no Go error is returned.
//
// MaterialCost of exactly zero is rejected: a bid with no material line is
// almost always a data-entry mistake, so zero is treated like a missing value.
func ValidateInputs(in Input) Validation {
	errs := make(map[string]string)

	if in.ProjectType == "" {
		errs["projectType"] = "project type is required"
	}
	if in.LaborHours <= 0 {
		errs["laborHours"] = "labor hours must be greater than 0"
	}
	if in.MaterialCost <= 0 {
		errs["materialCost"] = "material cost must be greater than 0"
	}
	if in.CrewSize <= 0 {
		errs["crewSize"] = "crew size must be greater than 0"
	}
	if in.ProjectDuration <= 0 {
		errs["projectDuration"] = "project duration must be greater than 0"
	}

	// Plausibility checks only make sense once the base fields pass.
	if in.LaborHours > 0 && in.CrewSize > 0 && in.ProjectDuration > 0 {
		hoursPerDay := in.LaborHours / float64(in.CrewSize) / float64(in.ProjectDuration)
		if hoursPerDay > maxHoursPerDay {
			errs["laborHours"] = "labor hours are too high for this crew size and duration"
		}
	}
	if in.MaterialCost > materialCostCeiling {
		errs["materialCost"] = "material cost is unusually high, double-check the amount"
	}

	if len(errs) > 0 {
		return Validation{Valid: false, Errors: errs}
	}
	return Validation{Valid: true}
}
