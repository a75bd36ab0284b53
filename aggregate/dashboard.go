package aggregate

import (
	"sort"
	"strings"

	"github.com/netra-cyber/netra-portal/models"
)

// FraudTypeCount is one bar of the fraud type breakdown.
type FraudTypeCount struct {
	Type  string
	Count int
}

// AlertView is one repeat-entity alert.
type AlertView struct {
	Level       string
	Color       string
	Type        string
	Identifier  string
	LinkedCases int
	FIRNumbers  string
}

// DashboardView is the financial intelligence dashboard.
type DashboardView struct {
	AmountAtRisk     string
	FinancialCases   int
	BankRequestsSent int
	FreezeConfirmed  int
	FreezeTotal      int
	AvgResponseTime  string
	FraudTypes       []FraudTypeCount
	RepeatTotal      int
	Alerts           []AlertView
}

// BuildDashboardView merges the financial dashboard with the repeat-entity alerts.
func BuildDashboardView(d models.FinancialDashboard, r models.RepeatEntities) DashboardView {
	view := DashboardView{
		AmountAtRisk:     d.AmountAtRisk,
		FinancialCases:   d.TotalFinancialCases,
		BankRequestsSent: d.BankRequestsSent,
		FreezeConfirmed:  d.FreezeRequests.Confirmed,
		FreezeTotal:      d.FreezeRequests.Total,
		AvgResponseTime:  d.AvgResponseTime,
		RepeatTotal:      r.TotalRepeatEntities,
	}
	if view.AmountAtRisk == "" {
		view.AmountAtRisk = "₹0"
	}
	if view.AvgResponseTime == "" {
		view.AvgResponseTime = "-"
	}

	for t, n := range d.TopFraudTypes {
		view.FraudTypes = append(view.FraudTypes, FraudTypeCount{Type: CaseType(t), Count: n})
	}
	sort.Slice(view.FraudTypes, func(i, j int) bool {
		a, b := view.FraudTypes[i], view.FraudTypes[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Type < b.Type
	})

	for _, a := range r.Alerts {
		view.Alerts = append(view.Alerts, AlertView{
			Level:       a.AlertLevel,
			Color:       AlertLevelColor(a.AlertLevel),
			Type:        Upper(a.Type),
			Identifier:  a.Identifier,
			LinkedCases: a.LinkedCasesCount,
			FIRNumbers:  strings.Join(a.FIRNumbers, ", "),
		})
	}
	return view
}
