package main

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/netra-cyber/netra-portal/render"
)

func getLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	page := render.LoginPage{Chrome: chrome(w, r, session{}, "Login", "login")}
	renderPage(w, http.StatusOK, render.PageLogin, page)
}

func postLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	page := render.LoginPage{Chrome: chrome(w, r, session{}, "Login", "login"), Username: username}
	if username == "" || password == "" {
		page.Alert(render.AlertDanger, "Username and password are required")
		renderPage(w, http.StatusBadRequest, render.PageLogin, page)
		return
	}

	tok, err := api.Login(r.Context(), username, password)
	if err != nil {
		logger.Info("login failed", zap.String("username", username), zap.Error(err))
		page.Alert(render.AlertDanger, err.Error())
		renderPage(w, statusFor(err), render.PageLogin, page)
		return
	}

	setSession(w, tok.AccessToken)
	if tok.IsFirstLogin {
		http.Redirect(w, r, "/password", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func getLogout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clearSession(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func getPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	page := render.PasswordPage{Chrome: chrome(w, r, s, "Change Password", "")}
	if me, err := api.Me(r.Context(), s.token); err == nil {
		page.FirstLogin = me.IsFirstLogin
	} else if expired(w, r, err) {
		return
	}
	renderPage(w, http.StatusOK, render.PagePassword, page)
}

func postPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	oldPassword := r.PostFormValue("old_password")
	newPassword := r.PostFormValue("new_password")

	err := api.ChangePassword(r.Context(), s.token, oldPassword, newPassword)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, "/password", render.AlertDanger, err.Error())
		return
	}
	redirectWith(w, r, "/", render.AlertSuccess, "Password updated successfully.")
}
