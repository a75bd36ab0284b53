package aggregate

import (
	"strings"

	"github.com/netra-cyber/netra-portal/models"
)

// CaseRow is one line of the cases dashboard.
type CaseRow struct {
	models.Case
	TypeLabel   string
	StatusColor string
	Registered  string
	Amount      string
}

// BuildCaseRows decorates cases for display.
func BuildCaseRows(cases []models.Case) []CaseRow {
	rows := make([]CaseRow, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, CaseRow{
			Case:        c,
			TypeLabel:   CaseType(c.CaseType),
			StatusColor: CaseStatusColor(c.Status),
			Registered:  Date(c.CreatedAt.Time),
			Amount:      Rupees(c.AmountInvolved.Float()),
		})
	}
	return rows
}

// CaseCounts tallies the dashboard header counters.
type CaseCounts struct {
	Total   int
	Active  int
	Pending int
	Closed  int
}

// CountCases counts cases per status.
func CountCases(cases []models.Case) CaseCounts {
	counts := CaseCounts{Total: len(cases)}
	for _, c := range cases {
		switch strings.ToLower(c.Status) {
		case models.CaseActive:
			counts.Active++
		case models.CasePending:
			counts.Pending++
		case models.CaseClosed:
			counts.Closed++
		}
	}
	return counts
}
