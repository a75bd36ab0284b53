package main

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/identity"
	"github.com/netra-cyber/netra-portal/models"
	"github.com/netra-cyber/netra-portal/render"
)

var registrableRoles = []string{
	string(identity.Constable), "Constable",
	string(identity.HeadConstable), "Head Constable",
	string(identity.SubInspector), "Sub Inspector",
	string(identity.Inspector), "Inspector (SHO)",
	string(identity.DySP), "Dy. SP",
	string(identity.SP), "SP",
	string(identity.Officer), "Officer",
	string(identity.Admin), "Admin",
}

func getAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	page := render.AdminPage{
		Chrome:      chrome(w, r, s, "Admin", "admin"),
		CanRegister: s.id.Can(identity.RegisterOfficer),
		Roles:       render.Options(string(identity.Officer), registrableRoles...),
	}

	if s.id.Can(identity.ViewAuditLogs) {
		logs, err := api.AuditLogs(r.Context(), s.token)
		if err != nil {
			if expired(w, r, err) {
				return
			}
			page.Alert(render.AlertDanger, err.Error())
		}
		for _, l := range logs {
			page.Logs = append(page.Logs, render.AuditRow{
				AuditLog: l,
				When:     aggregate.DateTime(l.Timestamp.Time),
				Class:    aggregate.AuditActionClass(l.Action),
			})
		}
	}

	renderPage(w, http.StatusOK, render.PageAdmin, page)
}

func postRegister(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	reg := models.Registration{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}

	user, err := api.Register(r.Context(), s.token, reg)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, "/admin", render.AlertDanger, err.Error())
		return
	}
	redirectWith(w, r, "/admin", render.AlertSuccess, "Officer "+user.Username+" registered successfully.")
}
