// Package report renders stored estimates as XLSX workbooks.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sitebid/sitebid/internal/calc"
	"github.com/sitebid/sitebid/internal/store"
)

const sheetName = "Estimate"

// Workbook renders a stored estimate as an XLSX workbook and returns the
// serialized file.
func Workbook(e store.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	rows := [][2]string{
		{"Estimate ID", fmt.Sprintf("%d", e.ID)},
		{"Session", e.SessionID},
		{"Created At", e.CreatedAt},
		{"Title", e.Title},
		{"", ""},
		{"Project Type", e.Input.ProjectType},
		{"Labor Hours", fmt.Sprintf("%.1f", e.Input.LaborHours)},
		{"Crew Size", fmt.Sprintf("%d", e.Input.CrewSize)},
		{"Duration", fmt.Sprintf("%d days", e.Input.ProjectDuration)},
		{"", ""},
		{"Cost Breakdown", ""},
		{"Materials", calc.FormatCurrency(e.Result.CostBreakdown.Materials)},
		{"Labor", calc.FormatCurrency(e.Result.CostBreakdown.Labor)},
		{"Overhead", calc.FormatCurrency(e.Result.CostBreakdown.Overhead)},
		{"Profit", calc.FormatCurrency(e.Result.CostBreakdown.Profit)},
		{"", ""},
		{"Break-even Amount", calc.FormatCurrency(e.Result.BreakEvenAmount)},
		{"Recommended Bid", calc.FormatCurrency(e.Result.RecommendedBid)},
		{"Profit Margin", calc.FormatPercentage(e.Result.ProfitMargin)},
		{"Profit per Labor Hour", calc.FormatCurrency(e.Result.HourlyRate)},
		{"Risk", fmt.Sprintf("%s (%d/10)", e.Result.RiskLevel, e.Result.RiskScore)},
		{"Industry Avg Margin", calc.FormatPercentage(e.Result.BenchmarkComparison.IndustryAvgMargin)},
		{"Performance", e.Result.BenchmarkComparison.PerformanceLevel},
	}

	rows = append(rows, [2]string{"", ""}, [2]string{"Recommendations", ""})
	for _, rec := range e.Result.Recommendations {
		rows = append(rows, [2]string{"", rec})
	}
	if len(e.Result.Warnings) > 0 {
		rows = append(rows, [2]string{"", ""}, [2]string{"Warnings", ""})
		for _, warn := range e.Result.Warnings {
			rows = append(rows, [2]string{"", warn})
		}
	}

	for i, row := range rows {
		if row[0] != "" {
			if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), row[0]); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
		if row[1] != "" {
			if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), row[1]); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
