package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"

	"github.com/netra-cyber/netra-portal/backend"
	"github.com/netra-cyber/netra-portal/models"
	"github.com/netra-cyber/netra-portal/render"
)

func TestRunSearchPrintsGroups(t *testing.T) {
	defer gock.Off()

	gock.New(backendURL).Get("/analysis/universal-search").
		MatchHeader("Authorization", "^Bearer tok$").
		Reply(200).
		JSON(models.SearchResult{
			Query: "mule@upi",
			Matches: []models.SearchMatch{
				{Source: models.SourceFinancialEntity, CaseID: 7, FIRNumber: "FIR/12/2026", MatchedValue: "mule@upi"},
			},
		})

	var out bytes.Buffer
	err := runSearch(context.Background(), backend.New(backendURL), render.NewText(&out, false), "tok", "mule@upi", "upi")

	require.NoError(t, err)
	assert.Contains(t, out.String(), `1 match(es) for "mule@upi"`)
	assert.Contains(t, out.String(), "Financial Entity (1)")
	assert.True(t, gock.IsDone())
}

func TestRunReportWithGraph(t *testing.T) {
	defer gock.Off()

	gock.New(backendURL).Get("/analysis/comprehensive-investigation-data").
		Reply(200).
		JSON(models.InvestigationReport{Identifier: "mule@upi", RiskProfile: &models.RiskProfile{Score: 40, Level: "MEDIUM", Priority: "MONITOR"}})
	gock.New(backendURL).Get("/analysis/network-graph").
		Reply(200).
		JSON(models.NetworkGraph{
			Nodes: []models.GraphNode{{ID: "UPI_1", Label: "mule@upi"}, {ID: "CASE_7", Label: "FIR/12/2026"}},
			Edges: []models.GraphEdge{{From: "UPI_1", To: "CASE_7"}},
		})

	var out bytes.Buffer
	err := runReport(context.Background(), backend.New(backendURL), render.NewText(&out, false), "tok", "mule@upi", true)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Investigation Report: mule@upi")
	assert.Contains(t, out.String(), "[MEDIUM]")
	assert.Contains(t, out.String(), "mule@upi -> FIR/12/2026")
	assert.True(t, gock.IsDone())
}

func TestRunReportFailure(t *testing.T) {
	defer gock.Off()

	gock.New(backendURL).Get("/analysis/comprehensive-investigation-data").
		Reply(401).
		JSON(map[string]string{"detail": "Could not validate credentials"})

	var out bytes.Buffer
	err := runReport(context.Background(), backend.New(backendURL), render.NewText(&out, false), "tok", "mule@upi", false)

	assert.True(t, backend.IsUnauthorized(err))
	assert.Empty(t, out.String())
}

func TestRunWatchPrintsUntilCancelled(t *testing.T) {
	defer gock.Off()
	mockDashboard(2)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	runWatch(ctx, backend.New(backendURL), render.NewText(&out, false), "tok", time.Hour)

	assert.Contains(t, out.String(), "Amount at risk: ₹4.5L")
	assert.Contains(t, out.String(), "Repeat entities: 2")
	assert.True(t, gock.IsDone())
}

func TestSearchCommandNeedsToken(t *testing.T) {
	saved := logger
	defer func() { logger = saved }()
	setDefaults()

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"search", "9876543210"})

	err := cmd.Execute()

	assert.EqualError(t, err, "no access token: pass --token or set NETRA_TOKEN")
}

func TestWatchCommandRejectsZeroInterval(t *testing.T) {
	saved := logger
	defer func() { logger = saved }()
	setDefaults()
	// rebind refresh_interval to a flag nobody has set
	t.Cleanup(func() { newWatchCommand() })

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"watch", "--token", "tok", "--interval", "0"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"serve", "login", "search", "report", "watch"} {
		sub, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err) {
			assert.Equal(t, name, sub.Name())
		}
	}
}
