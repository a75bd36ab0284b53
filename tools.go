package main

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/netra-cyber/netra-portal/backend"
	"github.com/netra-cyber/netra-portal/render"
)

func toolsPage(w http.ResponseWriter, r *http.Request, s session) render.ToolsPage {
	return render.ToolsPage{Chrome: chrome(w, r, s, "Tools", "tools")}
}

func getTools(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	renderPage(w, http.StatusOK, render.PageTools, toolsPage(w, r, s))
}

func getIPLookup(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	page := toolsPage(w, r, s)
	page.IPQuery = strings.TrimSpace(r.URL.Query().Get("ip"))
	if page.IPQuery == "" {
		http.Redirect(w, r, "/tools", http.StatusSeeOther)
		return
	}

	res, err := api.IPLookup(r.Context(), s.token, page.IPQuery)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	} else {
		page.IP = &res
	}
	renderPage(w, http.StatusOK, render.PageTools, page)
}

func postTowerDump(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	page := toolsPage(w, r, s)

	var headers []*multipart.FileHeader
	if err := r.ParseMultipartForm(32 << 20); err == nil && r.MultipartForm != nil {
		headers = r.MultipartForm.File["files"]
	}
	if len(headers) < 2 {
		page.Alert(render.AlertWarning, "Upload at least two tower dumps to correlate.")
		renderPage(w, http.StatusBadRequest, render.PageTools, page)
		return
	}

	files := make([]backend.NamedFile, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			page.Alert(render.AlertDanger, "Could not read "+h.Filename)
			renderPage(w, http.StatusBadRequest, render.PageTools, page)
			return
		}
		defer f.Close()
		files = append(files, backend.NamedFile{Name: h.Filename, Content: f})
	}

	res, err := api.AnalyzeTowerDump(r.Context(), s.token, files)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	} else {
		page.TowerDump = &res
	}
	renderPage(w, http.StatusOK, render.PageTools, page)
}
