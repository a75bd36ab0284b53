package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestNewParsesEveryPage(t *testing.T) {
	r := newRenderer(t)
	for _, p := range []string{PageLogin, PagePassword, PageDashboard, PageCase, PageRequests, PageAnalytics, PageAdmin, PageTools, PageError} {
		assert.Contains(t, r.pages, p)
	}
}

func TestUnknownPage(t *testing.T) {
	err := newRenderer(t).Execute(&bytes.Buffer{}, "nope.html", nil)
	assert.Error(t, err)
}

func TestAlertsAreEscaped(t *testing.T) {
	page := LoginPage{Chrome: Chrome{Title: "Login"}}
	page.Alert(AlertDanger, `<img src=x onerror=alert(1)>`)

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Execute(&buf, PageLogin, page))

	out := buf.String()
	assert.Contains(t, out, "alert-danger")
	assert.Contains(t, out, "&lt;img src=x onerror=alert(1)&gt;")
	assert.NotContains(t, out, "<img src=x")
}

func TestNavShowsUser(t *testing.T) {
	page := DashboardPage{Chrome: Chrome{
		Title:  "Cases",
		Active: "cases",
		User:   &User{Name: "asharma", Rank: "SI", Scope: "Station: Hazratganj"},
	}}

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Execute(&buf, PageDashboard, page))

	out := buf.String()
	assert.Contains(t, out, "Station: Hazratganj")
	assert.Contains(t, out, "No cases found.")
	assert.NotContains(t, out, `href="/tools"`)
}

func TestAnalyticsNoResults(t *testing.T) {
	view := aggregate.BuildSearchView(models.SearchResult{Query: "<b>x</b>"})
	page := AnalyticsPage{Chrome: Chrome{Title: "Analytics"}, Query: view.Query, Search: &view}

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Execute(&buf, PageAnalytics, page))

	out := buf.String()
	assert.Contains(t, out, `id="no-results"`)
	assert.NotContains(t, out, "<table")
	assert.NotContains(t, out, "<b>x</b>")
}

func TestAnalyticsGroupedResults(t *testing.T) {
	view := aggregate.BuildSearchView(models.SearchResult{
		Query: "9876543210",
		Count: 2,
		Matches: []models.SearchMatch{
			{Source: models.SourceCaseRecord, FIRNumber: "FIR/1", CaseID: 1, Status: "active"},
			{Source: models.SourceTelecomRequest, FIRNumber: "FIR/2", CaseID: 2},
		},
	})
	page := AnalyticsPage{Chrome: Chrome{Title: "Analytics"}, Search: &view}

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Execute(&buf, PageAnalytics, page))

	out := buf.String()
	first := strings.Index(out, "Case Record (1)")
	second := strings.Index(out, "Telecom Request (1)")
	assert.True(t, first >= 0 && second > first)
	assert.Contains(t, out, `href="/cases/1"`)
}

func TestPreviewErrorPanel(t *testing.T) {
	page := ErrorPage{
		Chrome: Chrome{Title: "Evidence"},
		Status: 502,
		Preview: &Preview{
			Name:         "disk.e01",
			DownloadPath: "/evidence/4/download",
			Error:        "Preview not available for this file type.",
		},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, newRenderer(t).Page(rec, 502, PageError, page))

	assert.Equal(t, 502, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Preview not available")
	assert.Contains(t, body, `href="/evidence/4/download"`)
}

func TestOptions(t *testing.T) {
	opts := Options("b", "a", "A", "b", "B")
	assert.Equal(t, []Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B", Selected: true}}, opts)
}

func TestTextSearch(t *testing.T) {
	view := aggregate.BuildSearchView(models.SearchResult{
		Query:   "alice@upi",
		Matches: []models.SearchMatch{{Source: models.SourceFinancialEntity, FIRNumber: "FIR/9", Status: "active", CaseID: 9}},
		Summary: &models.SearchSummary{FinancialEntities: 1},
	})

	var buf bytes.Buffer
	NewText(&buf, false).Search(view)

	out := buf.String()
	assert.Contains(t, out, `1 match(es) for "alice@upi"`)
	assert.Contains(t, out, "Financial Entities: 1")
	assert.Contains(t, out, "Financial Entity (1)")
	assert.Contains(t, out, "FIR/9 |")
	assert.Contains(t, out, "[active]")
	assert.NotContains(t, out, "\x1b[")
}

func TestTextSearchEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewText(&buf, false).Search(aggregate.BuildSearchView(models.SearchResult{Query: "nobody"}))
	assert.Equal(t, "No matches found for \"nobody\".\n", buf.String())
}

func TestTextReportAndDashboard(t *testing.T) {
	var buf bytes.Buffer
	text := NewText(&buf, false)

	text.Report(aggregate.BuildReportView(models.InvestigationReport{Identifier: "ghost"}))
	text.Dashboard(aggregate.BuildDashboardView(models.FinancialDashboard{}, models.RepeatEntities{
		TotalRepeatEntities: 1,
		Alerts:              []models.RepeatEntityAlert{{Type: "upi_id", Identifier: "mule@upi", AlertLevel: "HIGH", LinkedCasesCount: 2}},
	}), 1)

	out := buf.String()
	assert.Contains(t, out, "Investigation Report: ghost")
	assert.Contains(t, out, "No records linked to this identifier.")
	assert.Contains(t, out, "[1 NEW REPEAT ENTITIES]")
	assert.Contains(t, out, "[HIGH] UPI ID mule@upi")
}

func TestTextStripsMarkup(t *testing.T) {
	var buf bytes.Buffer
	NewText(&buf, false).Report(aggregate.BuildReportView(models.InvestigationReport{
		Identifier:          "mule@upi",
		TransactionTimeline: []models.TimelineEvent{{CaseID: 7, FIRNumber: "FIR/12/2026", EventType: "transfer", Narrative: "<b>Paid</b> & left"}},
	}))

	out := buf.String()
	assert.Contains(t, out, "Paid & left")
	assert.NotContains(t, out, "<b>")
}
