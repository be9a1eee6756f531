// Package controllers holds the HTTP handlers. Controllers stay thin: decode
// the request, call one service method, translate the result or error into a
// flat JSON body. All policy lives in app/services.
package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/shashiranjanraj/nightcap/app/services"
	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"github.com/shashiranjanraj/nightcap/pkg/logger"
	"github.com/shashiranjanraj/nightcap/pkg/response"
)

// respondErr maps the service error taxonomy onto HTTP statuses in one place.
// notFound is the endpoint-specific 404 wording; anything unrecognised becomes
// a generic 500 with the detail logged server-side only.
func respondErr(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid email or password")
	case errors.Is(err, services.ErrEmailTaken):
		response.Error(w, http.StatusConflict, "User already exists")
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w, notFound)
	case services.IsValidation(err):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage flattens a field->message map into one deterministic
// client-facing string.
func validationMessage(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, errs[f])
	}
	return strings.Join(parts, "; ")
}

// setTokenCookie attaches the signed auth token to the response.
func setTokenCookie(w http.ResponseWriter, token string, remember bool) {
	ttl := auth.TokenTTL
	if remember {
		ttl = auth.RememberTTL
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearTokenCookie expires the auth token cookie.
func clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
