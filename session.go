package main

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/netra-cyber/netra-portal/backend"
	"github.com/netra-cyber/netra-portal/identity"
	"github.com/netra-cyber/netra-portal/render"
)

const (
	sessionCookie = "netra_session"
	flashCookie   = "netra_flash"
)

// session is the signed-in officer of one request.
type session struct {
	token string
	id    identity.Identity
}

func setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   viper.GetBool("secure_cookies"),
		SameSite: http.SameSiteLaxMode,
	})
}

func setSession(w http.ResponseWriter, token string) {
	setCookie(w, sessionCookie, token, 0)
}

func clearSession(w http.ResponseWriter) {
	setCookie(w, sessionCookie, "", -1)
}

// authenticate returns the request's session. Without a usable token it redirects to
// the login page and reports false.
func authenticate(w http.ResponseWriter, r *http.Request) (session, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return session{}, false
	}

	id, err := identity.Decode(c.Value)
	if err != nil {
		logger.Info("discarding malformed session", zap.Error(err))
		clearSession(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return session{}, false
	}
	return session{token: c.Value, id: id}, true
}

// authed wraps a page controller that needs a signed-in officer.
func authed(h func(http.ResponseWriter, *http.Request, httprouter.Params, session)) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		s, ok := authenticate(w, r)
		if !ok {
			return
		}
		h(w, r, ps, s)
	}
}

// expired handles a backend 401 by ending the session. It reports whether it did.
func expired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !backend.IsUnauthorized(err) {
		return false
	}
	clearSession(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// flash leaves a banner for the next page the browser loads.
func flash(w http.ResponseWriter, kind, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "\n" + message))
	setCookie(w, flashCookie, value, 60)
}

// takeFlash reads and clears the pending banner.
func takeFlash(w http.ResponseWriter, r *http.Request) []render.Alert {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	setCookie(w, flashCookie, "", -1)

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(string(raw), "\n", 2)
	if len(parts) != 2 {
		return nil
	}
	return []render.Alert{{Kind: parts[0], Message: parts[1]}}
}

// redirectWith flashes a banner and sends the browser to path.
func redirectWith(w http.ResponseWriter, r *http.Request, path, kind, message string) {
	flash(w, kind, message)
	http.Redirect(w, r, path, http.StatusSeeOther)
}
