package main

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/csrf"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/netra-cyber/netra-portal/backend"
	"github.com/netra-cyber/netra-portal/refresh"
	"github.com/netra-cyber/netra-portal/render"
)

var (
	api   *backend.Client
	pages *render.Renderer
	now   = time.Now

	// alertTrackers holds one *refresh.AlertTracker per officer for the dashboard banner.
	alertTrackers sync.Map
)

// configure builds the backend client and templates from the current config.
func configure() error {
	api = backend.New(viper.GetString("backend_url"), backend.WithLogger(logger))

	r, err := render.New()
	if err != nil {
		return errors.Wrap(err, "loading templates")
	}
	pages = r
	return nil
}

func trackerFor(username string) *refresh.AlertTracker {
	t, _ := alertTrackers.LoadOrStore(username, &refresh.AlertTracker{})
	return t.(*refresh.AlertTracker)
}

func chrome(w http.ResponseWriter, r *http.Request, s session, title, active string) render.Chrome {
	c := render.Chrome{
		Title:     title,
		Active:    active,
		Alerts:    takeFlash(w, r),
		CSRFField: csrf.TemplateField(r),
		Features:  enabledFeatures(),
	}
	if s.token != "" {
		c.User = &render.User{Name: s.id.Username, Rank: s.id.RankLabel(), Scope: s.id.ScopeText()}
	}
	return c
}

// renderPage writes a page, falling back to a bare 500 if the template fails.
func renderPage(w http.ResponseWriter, status int, page string, data interface{}) {
	if err := pages.Page(w, status, page, data); err != nil {
		logger.Error("rendering page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// statusFor maps a backend failure onto the status the portal answers with.
func statusFor(err error) int {
	var re *backend.RequestError
	if errors.As(err, &re) && re.Status >= 400 && re.Status < 500 {
		return re.Status
	}
	return http.StatusBadGateway
}

// renderError shows the error page, or ends the session when the backend rejected the token.
func renderError(w http.ResponseWriter, r *http.Request, s session, err error) {
	if expired(w, r, err) {
		return
	}
	if backend.IsForbidden(err) {
		logger.Info("page refused", zap.String("path", r.URL.Path), zap.String("user", s.id.Username))
	} else {
		logger.Warn("page failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	status := statusFor(err)
	page := render.ErrorPage{
		Chrome:  chrome(w, r, s, "Error", ""),
		Status:  status,
		Message: err.Error(),
	}
	renderPage(w, status, render.PageError, page)
}

// idParam reads a positive integer route parameter.
func idParam(ps httprouter.Params, name string) (int, bool) {
	id, err := strconv.Atoi(ps.ByName(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
