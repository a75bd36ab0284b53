package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/h2non/gock.v1"

	"github.com/netra-cyber/netra-portal/identity"
	"github.com/netra-cyber/netra-portal/models"
)

func mockDashboard(repeatTotal int) {
	gock.New(backendURL).Get("/analytics/financial-dashboard").Reply(200).JSON(models.FinancialDashboard{
		TotalFinancialCases: 4,
		AmountAtRisk:        "₹4.5L",
		BankRequestsSent:    6,
		FreezeRequests:      models.FreezeSummary{Total: 3, Confirmed: 1, Pending: 2},
		TopFraudTypes:       map[string]int{"upi_fraud": 3, "loan_app": 1},
	})
	gock.New(backendURL).Get("/analytics/repeat-entities").Reply(200).JSON(models.RepeatEntities{
		TotalRepeatEntities: repeatTotal,
		Alerts: []models.RepeatEntityAlert{
			{Type: "UPI", Identifier: "mule@upi", LinkedCasesCount: 3, FIRNumbers: []string{"FIR/12/2026", "FIR/13/2026"}, AlertLevel: "HIGH"},
		},
	})
}

func TestAnalyticsDashboard(t *testing.T) {
	setup()
	defer gock.Off()
	mockDashboard(1)

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, `id="financial-dashboard"`)
	assert.Contains(t, body, "₹4.5L")
	assert.Contains(t, body, "mule@upi")
	assert.Contains(t, body, `http-equiv="refresh"`)
	assert.True(t, gock.IsDone())
}

func TestAnalyticsAnnouncesNewRepeatEntities(t *testing.T) {
	setup()
	defer gock.Off()

	token := tokenFor("analyst.alerts", identity.SubInspector)
	load := func(total int) string {
		mockDashboard(total)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/analytics", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
		router.ServeHTTP(rec, req)
		return rec.Body.String()
	}

	assert.NotContains(t, load(2), `id="new-alerts"`)
	assert.NotContains(t, load(2), `id="new-alerts"`)
	assert.Contains(t, load(3), "1 new repeat entity detected")
	assert.True(t, gock.IsDone())
}

func TestAnalyticsDashboardFailure(t *testing.T) {
	setup()
	defer gock.Off()

	gock.New(backendURL).Get("/analytics/financial-dashboard").Reply(500)
	gock.New(backendURL).Get("/analytics/repeat-entities").Reply(200).JSON(models.RepeatEntities{})

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, "Failed to load financial dashboard")
	assert.NotContains(t, body, `id="financial-dashboard"`)
}

func TestSearchWithoutQueryRedirects(t *testing.T) {
	setup()

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/search?q=+", nil), identity.SubInspector))

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/analytics", resp.Header().Get("Location"))
}

func TestSearchGroupsBySource(t *testing.T) {
	setup()
	defer gock.Off()

	gock.New(backendURL).Get("/analysis/universal-search").
		MatchParam("query", "9876543210").
		MatchParam("search_type", "mobile").
		Reply(200).
		JSON(models.SearchResult{
			Query:      "9876543210",
			SearchType: "mobile",
			Count:      3,
			Matches: []models.SearchMatch{
				{Source: models.SourceTelecomRequest, CaseID: 7, FIRNumber: "FIR/12/2026", MatchedValue: "9876543210", Status: "pending"},
				{Source: models.SourceTelecomRequest, CaseID: 8, FIRNumber: "FIR/13/2026", MatchedValue: "9876543210", Status: "approved"},
				{Source: models.SourceCaseRecord, CaseID: 7, FIRNumber: "FIR/12/2026", MatchedValue: "9876543210", Status: "active"},
			},
			Summary: &models.SearchSummary{TelecomRequests: 2, CaseRecords: 1},
		})

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/search?q=9876543210&type=mobile", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, "Telecom Request (2)")
	assert.Contains(t, body, "Case Record (1)")
	assert.Contains(t, body, `href="/cases/8"`)
	assert.NotContains(t, body, `id="no-results"`)
	assert.True(t, gock.IsDone())
}

func TestSearchNoMatches(t *testing.T) {
	setup()
	defer gock.Off()

	gock.New(backendURL).Get("/analysis/universal-search").
		Reply(200).
		JSON(models.SearchResult{Query: "0000000000", SearchType: "mobile"})

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/search?q=0000000000", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, `id="no-results"`)
	assert.NotContains(t, body, `id="section-`)
}

func mockReport() {
	gock.New(backendURL).Get("/analysis/comprehensive-investigation-data").
		MatchParam("identifier", "mule@upi").
		Reply(200).
		JSON(models.InvestigationReport{
			Identifier: "mule@upi",
			Cases:      []models.Case{{ID: 7, FIRNumber: "FIR/12/2026", Status: models.CaseActive}},
			SummaryStats: models.SummaryStats{
				TotalCases:             1,
				TotalTransactionAmount: 45000,
				FIRNumbers:             []string{"FIR/12/2026"},
			},
			RiskProfile: &models.RiskProfile{Score: 82, Level: "CRITICAL", Priority: "IMMEDIATE ACTION"},
		})
}

func TestReportWithGraph(t *testing.T) {
	toggleFeature(featureNetworkGraph, true)
	setup()
	defer gock.Off()
	mockReport()

	gock.New(backendURL).Get("/analysis/network-graph").
		MatchParam("identifier", "mule@upi").
		Reply(200).
		JSON(models.NetworkGraph{
			Nodes: []models.GraphNode{{ID: "UPI_1", Label: "mule@upi", Group: "financial"}, {ID: "CASE_7", Label: "FIR/12/2026", Group: "case"}},
			Edges: []models.GraphEdge{{From: "UPI_1", To: "CASE_7", Label: "linked"}},
		})

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/report?q=mule@upi", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, `id="risk-card"`)
	assert.Contains(t, body, "IMMEDIATE ACTION")
	assert.Contains(t, body, "45.0k")
	assert.Contains(t, body, `id="section-cases"`)
	assert.Contains(t, body, `id="network-graph"`)
	assert.Contains(t, body, `href="/cases/7"`)
	assert.True(t, gock.IsDone())
}

func TestReportSurvivesGraphFailure(t *testing.T) {
	toggleFeature(featureNetworkGraph, true)
	setup()
	defer gock.Off()
	mockReport()

	gock.New(backendURL).Get("/analysis/network-graph").Reply(500)

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/report?q=mule@upi", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, `id="risk-card"`)
	assert.Contains(t, body, "Failed to fetch graph data")
	assert.NotContains(t, body, `id="network-graph"`)
}

func TestReportSkipsGraphWhenDisabled(t *testing.T) {
	toggleFeature(featureNetworkGraph, false)
	defer toggleFeature(featureNetworkGraph, true)
	setup()
	defer gock.Off()
	mockReport()

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/report?q=mule@upi", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, `id="report"`)
	assert.NotContains(t, body, `id="network-graph"`)
	assert.True(t, gock.IsDone())
}

func TestReportNoData(t *testing.T) {
	setup()
	defer gock.Off()

	gock.New(backendURL).Get("/analysis/comprehensive-investigation-data").
		Reply(200).
		JSON(models.InvestigationReport{Identifier: "nobody@upi"})
	gock.New(backendURL).Get("/analysis/network-graph").
		Reply(200).
		JSON(models.NetworkGraph{})

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/report?q=nobody@upi", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, `id="no-results"`)
	assert.NotContains(t, body, `id="risk-card"`)
}

func TestNetworkDisabled(t *testing.T) {
	toggleFeature(featureNetworkGraph, false)
	defer toggleFeature(featureNetworkGraph, true)
	setup()

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/network?q=mule@upi", nil), identity.SubInspector))

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

func TestFileSearch(t *testing.T) {
	toggleFeature(featureFileSearch, true)
	setup()
	defer gock.Off()

	gock.New(backendURL).Post("/analysis/file-search").
		Reply(200).
		JSON(models.FileSearchResult{
			Filename:      "statement.csv",
			ExtractedData: &models.ExtractedData{MobileNumbers: []string{"9876543210"}},
			Summary:       models.FileSearchSummary{TotalIdentifiers: 1, TotalMatches: 1},
			Matches: []models.SearchMatch{
				{Source: models.SourceTelecomRequest, CaseID: 7, FIRNumber: "FIR/12/2026", SearchedIdentifier: "9876543210"},
			},
			Count: 1,
		})

	req := multipartRequest(t, "/analytics/file-search", "file", map[string]string{"statement.csv": "9876543210\n"})
	router.ServeHTTP(resp, signedIn(req, identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, `id="file-search-results"`)
	assert.Contains(t, body, "statement.csv: 1 identifier(s), 1 match(es)")
	assert.True(t, gock.IsDone())
}

func TestFileSearchDisabled(t *testing.T) {
	toggleFeature(featureFileSearch, false)
	defer toggleFeature(featureFileSearch, true)
	setup()

	req := multipartRequest(t, "/analytics/file-search", "file", map[string]string{"statement.csv": "x"})
	router.ServeHTTP(resp, signedIn(req, identity.SubInspector))

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

func TestCDRAnalysis(t *testing.T) {
	setup()
	defer gock.Off()

	gock.New(backendURL).Get("/analysis/cdr/3").Reply(200).JSON(models.CDRAnalysis{
		TotalCalls:          12,
		TotalDuration:       900,
		TopContactsOutgoing: map[string]int{"9123456780": 7},
		TopContactsIncoming: map[string]int{"9000000000": 5},
		HourlyStats:         map[string]int{"22": 9, "9": 3},
	})

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/cdr?evidence_id=3", nil), identity.SubInspector))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, `id="cdr"`)
	assert.Contains(t, body, "22:00")
	assert.Contains(t, body, "9123456780")
	assert.True(t, gock.IsDone())
}

func TestCDRWithoutEvidenceRedirects(t *testing.T) {
	setup()

	router.ServeHTTP(resp, signedIn(httptest.NewRequest("GET", "/analytics/cdr", nil), identity.SubInspector))

	assert.Equal(t, http.StatusSeeOther, resp.Code)
}
