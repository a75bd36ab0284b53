// Package listing filters and sorts the case and request tables. Every function here is
// pure: inputs are never modified and equal keys keep their original order.
package listing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/netra-cyber/netra-portal/models"
)

// Sort keys shared by both tables.
const (
	DateDesc = "date_desc"
	DateAsc  = "date_asc"
	IDAsc    = "id_asc"
	IDDesc   = "id_desc"
	FIRAsc   = "fir_asc"
	FIRDesc  = "fir_desc"
)

// DefaultSort is used for empty or unknown sort keys.
const DefaultSort = DateDesc

// AllStatuses disables the status filter.
const AllStatuses = "all"

// CaseCriteria narrows the cases dashboard.
type CaseCriteria struct {
	Search string
	Status string
	Sort   string
}

// RequestCriteria narrows the requests page.
type RequestCriteria struct {
	Search string
	Status string
	Type   string
	Sort   string
}

func matchesEquality(want, got string) bool {
	return want == "" || want == AllStatuses || want == got
}

func containsAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Cases returns the cases matching c in the requested order.
func Cases(cases []models.Case, c CaseCriteria) []models.Case {
	term := strings.ToLower(c.Search)

	out := make([]models.Case, 0, len(cases))
	for _, k := range cases {
		if !matchesEquality(c.Status, k.Status) {
			continue
		}
		if !containsAny(term, k.FIRNumber, k.PoliceStation, k.CaseType, k.Description) {
			continue
		}
		out = append(out, k)
	}

	sort.SliceStable(out, caseLess(out, c.Sort))
	return out
}

func caseLess(cases []models.Case, key string) func(i, j int) bool {
	switch key {
	case DateAsc:
		return func(i, j int) bool { return cases[i].CreatedAt.Before(cases[j].CreatedAt.Time) }
	case FIRAsc:
		return func(i, j int) bool { return cases[i].FIRNumber < cases[j].FIRNumber }
	case FIRDesc:
		return func(i, j int) bool { return cases[i].FIRNumber > cases[j].FIRNumber }
	case IDAsc:
		return func(i, j int) bool { return cases[i].ID < cases[j].ID }
	case IDDesc:
		return func(i, j int) bool { return cases[i].ID > cases[j].ID }
	default:
		return func(i, j int) bool { return cases[i].CreatedAt.After(cases[j].CreatedAt.Time) }
	}
}

// Requests returns the requests matching c in the requested order. firs resolves a
// request's case to its FIR number so officers can search by FIR.
func Requests(reqs []models.Request, firs map[int]string, c RequestCriteria) []models.Request {
	term := strings.ToLower(c.Search)

	out := make([]models.Request, 0, len(reqs))
	for _, r := range reqs {
		if !matchesEquality(c.Status, r.Status) || !matchesEquality(c.Type, r.RequestType) {
			continue
		}
		fir := r.FIRNumber
		if fir == "" {
			fir = firs[r.CaseID]
		}
		if !containsAny(term, strconv.Itoa(r.ID), r.MobileNumber, strconv.Itoa(r.CaseID), fir, r.Reason, r.RejectionReason) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, requestLess(out, c.Sort))
	return out
}

func requestLess(reqs []models.Request, key string) func(i, j int) bool {
	switch key {
	case DateAsc:
		return func(i, j int) bool { return reqs[i].CreatedAt.Before(reqs[j].CreatedAt.Time) }
	case IDAsc:
		return func(i, j int) bool { return reqs[i].ID < reqs[j].ID }
	case IDDesc:
		return func(i, j int) bool { return reqs[i].ID > reqs[j].ID }
	default:
		return func(i, j int) bool { return reqs[i].CreatedAt.After(reqs[j].CreatedAt.Time) }
	}
}

// RequestTypes lists the distinct request types in first-seen order, for the type filter.
func RequestTypes(reqs []models.Request) []string {
	seen := make(map[string]bool)
	var types []string
	for _, r := range reqs {
		if r.RequestType == "" || seen[r.RequestType] {
			continue
		}
		seen[r.RequestType] = true
		types = append(types, r.RequestType)
	}
	return types
}
