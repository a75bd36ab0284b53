package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/backend"
	"github.com/netra-cyber/netra-portal/models"
	"github.com/netra-cyber/netra-portal/refresh"
	"github.com/netra-cyber/netra-portal/render"
)

func analyticsPage(w http.ResponseWriter, r *http.Request, s session, query, searchType string) render.AnalyticsPage {
	if searchType == "" {
		searchType = "auto"
	}
	return render.AnalyticsPage{
		Chrome:     chrome(w, r, s, "Analytics", "analytics"),
		Query:      query,
		SearchType: searchType,
		Types: render.Options(searchType,
			"auto", "Auto Detect",
			"mobile", "Mobile Number",
			"upi", "UPI ID",
			"account", "Bank Account",
			"fir", "FIR Number",
			"name", "Name"),
	}
}

// fetchDashboard loads the financial dashboard and the repeat entities together.
func fetchDashboard(ctx context.Context, client *backend.Client, token string) (aggregate.DashboardView, models.RepeatEntities, error) {
	var (
		dash    models.FinancialDashboard
		repeats models.RepeatEntities
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dash, err = client.FinancialDashboard(ctx, token)
		return err
	})
	g.Go(func() (err error) {
		repeats, err = client.RepeatEntities(ctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return aggregate.DashboardView{}, models.RepeatEntities{}, err
	}
	return aggregate.BuildDashboardView(dash, repeats), repeats, nil
}

func getAnalytics(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	page := analyticsPage(w, r, s, "", "")
	interval, err := refreshInterval()
	if err != nil {
		interval = refresh.DefaultInterval
	}
	page.RefreshSeconds = int(interval.Seconds())

	view, repeats, err := fetchDashboard(r.Context(), api, s.token)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	} else {
		page.Dashboard = &view
		page.NewAlerts = trackerFor(s.id.Username).Observe(repeats.TotalRepeatEntities)
	}

	renderPage(w, http.StatusOK, render.PageAnalytics, page)
}

func getSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Redirect(w, r, "/analytics", http.StatusSeeOther)
		return
	}
	page := analyticsPage(w, r, s, query, r.URL.Query().Get("type"))

	res, err := api.UniversalSearch(r.Context(), s.token, query, page.SearchType)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	} else {
		view := aggregate.BuildSearchView(res)
		page.Search = &view
	}

	renderPage(w, http.StatusOK, render.PageAnalytics, page)
}

// getReport fetches the investigation report and, when enabled, the network graph for
// the same identifier. A failing graph only costs the graph.
func getReport(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Redirect(w, r, "/analytics", http.StatusSeeOther)
		return
	}
	page := analyticsPage(w, r, s, query, r.URL.Query().Get("type"))

	var (
		report   models.InvestigationReport
		graph    models.NetworkGraph
		graphErr error
	)
	withGraph := isEnabled(featureNetworkGraph)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		report, err = api.InvestigationData(ctx, s.token, query)
		return err
	})
	if withGraph {
		g.Go(func() error {
			graph, graphErr = api.NetworkGraph(ctx, s.token, query)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
		renderPage(w, http.StatusOK, render.PageAnalytics, page)
		return
	}

	view := aggregate.BuildReportView(report)
	page.Report = &view
	if withGraph {
		if graphErr != nil {
			logger.Warn("network graph failed", zap.String("identifier", query), zap.Error(graphErr))
			page.Alert(render.AlertWarning, graphErr.Error())
		} else {
			gv := aggregate.BuildGraphView(query, graph)
			page.Graph = &gv
		}
	}

	renderPage(w, http.StatusOK, render.PageAnalytics, page)
}

func getNetwork(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Redirect(w, r, "/analytics", http.StatusSeeOther)
		return
	}
	page := analyticsPage(w, r, s, query, "")

	graph, err := api.NetworkGraph(r.Context(), s.token, query)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	} else {
		gv := aggregate.BuildGraphView(query, graph)
		page.Graph = &gv
	}

	renderPage(w, http.StatusOK, render.PageAnalytics, page)
}

func postFileSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	page := analyticsPage(w, r, s, "", "")

	file, header, err := r.FormFile("file")
	if err != nil {
		page.Alert(render.AlertDanger, "Please choose a file to search.")
		renderPage(w, http.StatusBadRequest, render.PageAnalytics, page)
		return
	}
	defer file.Close()

	res, err := api.FileSearch(r.Context(), s.token, header.Filename, file)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	} else {
		view := aggregate.BuildFileSearchView(res)
		page.FileSearch = &view
	}

	renderPage(w, http.StatusOK, render.PageAnalytics, page)
}

func getCDR(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	id, err := strconv.Atoi(r.URL.Query().Get("evidence_id"))
	if err != nil || id <= 0 {
		http.Redirect(w, r, "/analytics", http.StatusSeeOther)
		return
	}
	page := analyticsPage(w, r, s, "", "")

	a, err := api.AnalyzeCDR(r.Context(), s.token, id)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	} else {
		view := aggregate.BuildCDRView(a)
		page.CDR = &view
	}

	renderPage(w, http.StatusOK, render.PageAnalytics, page)
}
