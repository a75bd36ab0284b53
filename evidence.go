package main

import (
	"io"
	"mime"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/backend"
	"github.com/netra-cyber/netra-portal/render"
)

// stream copies a backend file to the browser. disposition is "attachment" or "inline".
func stream(w http.ResponseWriter, d *backend.Download, disposition string) {
	defer d.Close()

	contentType := d.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": d.Filename}))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if disposition == "inline" {
		// Backend bytes are served from the portal origin.
		w.Header().Set("Content-Security-Policy", "sandbox")
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, d.Body); err != nil {
		logger.Warn("streaming file", zap.String("filename", d.Filename), zap.Error(err))
	}
}

func getEvidenceDownload(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	d, err := api.DownloadEvidence(r.Context(), s.token, id)
	if err != nil {
		renderError(w, r, s, err)
		return
	}
	stream(w, d, "attachment")
}

// getEvidenceView serves a file for inline preview. When the backend cannot produce it the
// fallback panel offers the download instead.
func getEvidenceView(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	d, err := api.ViewEvidence(r.Context(), s.token, id)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		status := statusFor(err)
		page := render.ErrorPage{
			Chrome: chrome(w, r, s, "Evidence", "cases"),
			Status: status,
			Preview: &render.Preview{
				Name:         "Evidence #" + ps.ByName("id"),
				DownloadPath: aggregate.EvidenceDownloadPath(id),
				Error:        err.Error(),
			},
		}
		renderPage(w, status, render.PageError, page)
		return
	}
	stream(w, d, "inline")
}
