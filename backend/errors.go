package backend

import (
	"errors"
	"net/http"

	"github.com/tidwall/gjson"
)

// RequestError is the one error shape page controllers see. Detail is safe to show to the
// user: it is either the backend's own message or a fixed fallback for the operation.
type RequestError struct {
	Status int
	Detail string
	cause  error
}

func (e *RequestError) Error() string {
	return e.Detail
}

// Unwrap exposes transport or decoding failures for logging.
func (e *RequestError) Unwrap() error {
	return e.cause
}

// newRequestError builds an error from a non-2xx response body. FastAPI sends
// {"detail": "..."} for handled errors and {"detail": [{"msg": ...}, ...]} for validation
// failures; anything else falls back.
func newRequestError(status int, body []byte, fallback string) *RequestError {
	detail := detailFrom(body)
	if detail == "" {
		detail = fallback
	}
	return &RequestError{Status: status, Detail: detail}
}

func detailFrom(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}
	d := gjson.GetBytes(body, "detail")
	switch {
	case d.Type == gjson.String:
		return d.String()
	case d.IsArray():
		if msg := d.Get("0.msg"); msg.Type == gjson.String {
			return msg.String()
		}
	}
	return ""
}

// IsUnauthorized reports whether err means the stored token is no longer usable. Pages
// respond by clearing the session and sending the user back to the login page.
func IsUnauthorized(err error) bool {
	var re *RequestError
	if !errors.As(err, &re) {
		return false
	}
	return re.Status == http.StatusUnauthorized
}

// IsForbidden reports a 403 from the backend: the user is signed in but lacks the right.
func IsForbidden(err error) bool {
	var re *RequestError
	if !errors.As(err, &re) {
		return false
	}
	return re.Status == http.StatusForbidden
}
