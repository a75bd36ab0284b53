package listing

import (
	"testing"
	"time"

	"github.com/netra-cyber/netra-portal/models"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func day(n int) models.Time {
	return models.NewTime(base.Add(time.Duration(n) * 24 * time.Hour))
}

func testCases() []models.Case {
	return []models.Case{
		{ID: 1, FIRNumber: "FIR/003", PoliceStation: "Hazratganj", CaseType: "upi_fraud", Status: "active", CreatedAt: day(1)},
		{ID: 2, FIRNumber: "FIR/001", PoliceStation: "Gomti Nagar", CaseType: "sextortion", Status: "closed", CreatedAt: day(3)},
		{ID: 3, FIRNumber: "FIR/002", PoliceStation: "Aliganj", CaseType: "job_scam", Status: "active", Description: "Fake HAZRAT job", CreatedAt: day(1)},
	}
}

func ids(cases []models.Case) []int {
	var out []int
	for _, c := range cases {
		out = append(out, c.ID)
	}
	return out
}

func TestCasesSearchIsCaseInsensitive(t *testing.T) {
	got := Cases(testCases(), CaseCriteria{Search: "hazrat"})
	assert.Equal(t, []int{1, 3}, ids(got))
}

func TestCasesStatusFilter(t *testing.T) {
	assert.Equal(t, []int{1, 3}, ids(Cases(testCases(), CaseCriteria{Status: "active", Sort: IDAsc})))
	assert.Len(t, Cases(testCases(), CaseCriteria{Status: AllStatuses}), 3)
}

func TestCasesDefaultSortIsNewestFirstAndStable(t *testing.T) {
	got := Cases(testCases(), CaseCriteria{})
	assert.Equal(t, []int{2, 1, 3}, ids(got))

	got = Cases(testCases(), CaseCriteria{Sort: DateAsc})
	assert.Equal(t, []int{1, 3, 2}, ids(got))
}

func TestCasesFIRSort(t *testing.T) {
	assert.Equal(t, []int{2, 3, 1}, ids(Cases(testCases(), CaseCriteria{Sort: FIRAsc})))
	assert.Equal(t, []int{1, 3, 2}, ids(Cases(testCases(), CaseCriteria{Sort: FIRDesc})))
}

func TestCasesIsPureAndIdempotent(t *testing.T) {
	in := testCases()
	crit := CaseCriteria{Search: "a", Status: "active", Sort: FIRAsc}

	once := Cases(in, crit)
	twice := Cases(once, crit)

	assert.Equal(t, once, twice)
	assert.Equal(t, testCases(), in)
}

func testRequests() []models.Request {
	return []models.Request{
		{ID: 10, CaseID: 1, MobileNumber: "9876543210", RequestType: "CDR", Status: "pending", Reason: "Airtel subscriber", CreatedAt: day(2)},
		{ID: 11, CaseID: 2, MobileNumber: "9123456780", RequestType: "IPDR", Status: "rejected", RejectionReason: "Insufficient grounds", CreatedAt: day(5)},
		{ID: 12, CaseID: 1, MobileNumber: "9000000000", RequestType: "CDR", Status: "approved", CreatedAt: day(2)},
	}
}

func reqIDs(reqs []models.Request) []int {
	var out []int
	for _, r := range reqs {
		out = append(out, r.ID)
	}
	return out
}

func TestRequestsSearchFields(t *testing.T) {
	firs := map[int]string{1: "FIR/777"}

	assert.Equal(t, []int{10}, reqIDs(Requests(testRequests(), firs, RequestCriteria{Search: "98765"})))
	assert.Equal(t, []int{11}, reqIDs(Requests(testRequests(), firs, RequestCriteria{Search: "insufficient"})))
	assert.Equal(t, []int{10, 12}, reqIDs(Requests(testRequests(), firs, RequestCriteria{Search: "fir/777", Sort: IDAsc})))
	assert.Equal(t, []int{11}, reqIDs(Requests(testRequests(), firs, RequestCriteria{Search: "11"})))
}

func TestRequestsStatusAndTypeFilters(t *testing.T) {
	got := Requests(testRequests(), nil, RequestCriteria{Type: "CDR", Status: "approved"})
	assert.Equal(t, []int{12}, reqIDs(got))
}

func TestRequestsFiltersMatchExactly(t *testing.T) {
	assert.Empty(t, Requests(testRequests(), nil, RequestCriteria{Type: "cdr"}))
	assert.Empty(t, Requests(testRequests(), nil, RequestCriteria{Status: "Approved"}))
	assert.Empty(t, Requests(testRequests(), nil, RequestCriteria{Search: " 98765"}))
}

func TestRequestsSorts(t *testing.T) {
	assert.Equal(t, []int{11, 10, 12}, reqIDs(Requests(testRequests(), nil, RequestCriteria{})))
	assert.Equal(t, []int{10, 12, 11}, reqIDs(Requests(testRequests(), nil, RequestCriteria{Sort: DateAsc})))
	assert.Equal(t, []int{12, 11, 10}, reqIDs(Requests(testRequests(), nil, RequestCriteria{Sort: IDDesc})))
	assert.Equal(t, []int{11, 10, 12}, reqIDs(Requests(testRequests(), nil, RequestCriteria{Sort: "bogus"})))
}

func TestRequestTypes(t *testing.T) {
	assert.Equal(t, []string{"CDR", "IPDR"}, RequestTypes(testRequests()))
}
