package calc

// recommendations builds the ordered guidance list. Order is significant:
// callers may show only the first few entries, and the last two are always
// present, so the list is never empty.
func recommendations(in Input, bench Benchmark, res Result) []string {
	recs := make([]string, 0, 8)

	if res.ProfitMargin < 10 {
		recs = append(recs, "Consider increasing your bid: profit margin is below 10%, which leaves little room for surprises.")
	}
	if res.ProfitMargin > 40 {
		recs = append(recs, "Your margin is above 40%. Verify the bid is still competitive for this market before submitting.")
	}
	if res.MaterialToLaborRatio > bench.MaterialLaborRatio*1.3 {
		recs = append(recs, "Material costs run well above typical for this project type. Negotiate supplier discounts or consider alternative materials.")
	}
	if res.MaterialToLaborRatio < bench.MaterialLaborRatio*0.7 {
		recs = append(recs, "Labor dominates this estimate. Look for efficiency gains in scheduling and crew utilization.")
	}
	if in.ProjectDuration > 60 {
		recs = append(recs,
			"For projects beyond 60 days, add price escalation clauses to cover material cost changes.",
			"Set up progress billing so cash flow keeps pace with the work.")
	}
	if in.CrewSize > 10 {
		recs = append(recs, "Crews larger than 10 need dedicated supervision; budget for a site supervisor.")
	}
	if res.ProfitMargin >= 15 && res.ProfitMargin <= 30 {
		recs = append(recs, "Your profit margin sits in the healthy 15-30% range for this industry.")
	}

	recs = append(recs,
		"Add a 10% contingency to cover unexpected costs.",
		"Track actual costs daily against this estimate to catch overruns early.")
	return recs
}

// warnings builds the caution list. All triggers are independent and may
// co-occur; the list may be empty for a healthy estimate.
func warnings(in Input, res Result) []string {
	warns := make([]string, 0, 4)

	if res.ProfitMargin < 10 {
		warns = append(warns, "Profit margin is below 10%.")
	}
	if res.ProfitMargin < 5 {
		warns = append(warns, "Profit margin is below 5%: this bid may lose money after change orders.")
	}
	if res.RiskScore >= 7 {
		warns = append(warns, "High risk project: review assumptions before committing to this bid.")
	}
	if res.MaterialToLaborRatio > 2.5 {
		warns = append(warns, "Material-heavy project: supplier price volatility can erase the margin.")
	}
	if in.ProjectDuration > 90 {
		warns = append(warns, "Extended timeline: costs beyond 90 days are hard to predict.")
	}
	if in.LaborHours/float64(in.CrewSize)/float64(in.ProjectDuration) > warnHoursPerDay {
		warns = append(warns, "Labor hours may be underestimated for this crew size and duration.")
	}
	return warns
}
