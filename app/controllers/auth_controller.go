package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/app/services"
	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"github.com/shashiranjanraj/nightcap/pkg/bind"
	"github.com/shashiranjanraj/nightcap/pkg/response"
	"github.com/shashiranjanraj/nightcap/pkg/session"
	"gorm.io/gorm"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{service: services.NewAuthService(db)}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// Register creates the account and logs the user straight in: the token goes
// out both as a cookie and in the body for non-browser clients.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.Error(w, http.StatusBadRequest, validationMessage(errs))
		return
	}

	token, err := c.service.Register(body.Email, body.Password)
	if err != nil {
		respondErr(w, r, err, "Not found")
		return
	}

	// Fresh account, no tracking sessions yet.
	sess := session.FromCtx(r)
	sess.Delete(session.KeyCurrentSession)
	sess.Save(w) //nolint:errcheck

	setTokenCookie(w, token, false)
	response.OK(w, map[string]string{
		"message": "Registration successful",
		"token":   token,
	})
}

// Login verifies credentials, points the auth session at the user's most
// recent tracking session, and hands out the token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.Error(w, http.StatusBadRequest, validationMessage(errs))
		return
	}

	token, currentSessionID, err := c.service.Login(body.Email, body.Password, body.Remember)
	if err != nil {
		respondErr(w, r, err, "Not found")
		return
	}

	sess := session.FromCtx(r)
	if currentSessionID != "" {
		sess.Set(session.KeyCurrentSession, currentSessionID)
	} else {
		sess.Delete(session.KeyCurrentSession)
	}
	sess.Save(w) //nolint:errcheck

	setTokenCookie(w, token, body.Remember)
	response.OK(w, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

// Logout clears the token cookie and wipes the server-side session.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	sess.Save(w) //nolint:errcheck

	clearTokenCookie(w)
	response.Message(w, "Logout successful")
}

// statusResponse uses pointers so logged-out and empty values serialize as
// JSON null, matching what clients expect.
type statusResponse struct {
	LoggedIn         bool    `json:"logged_in"`
	Username         *string `json:"username"`
	MetricsSet       bool    `json:"metrics_set"`
	CurrentSessionID *string `json:"current_session_id"`
}

// Status reports login state, whether metrics are saved, and the current
// tracking-session pointer. Anonymous callers get a 200 with logged_in false.
// When the pointer is unset it is resolved lazily to the latest session and
// written back.
func (c *AuthController) Status(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFrom(r.Context())
	if !ok {
		response.OK(w, statusResponse{})
		return
	}

	st, err := c.service.Status(ident.Email, ident.CurrentSessionID)
	if err != nil {
		respondErr(w, r, err, "Not found")
		return
	}

	if st.CurrentSessionID != "" && st.CurrentSessionID != ident.CurrentSessionID {
		sess := session.FromCtx(r)
		sess.Set(session.KeyCurrentSession, st.CurrentSessionID)
		sess.Save(w) //nolint:errcheck
	}

	out := statusResponse{
		LoggedIn:   true,
		Username:   &st.Username,
		MetricsSet: st.MetricsSet,
	}
	if st.CurrentSessionID != "" {
		out.CurrentSessionID = &st.CurrentSessionID
	}
	response.OK(w, out)
}

// SetMetrics stores the caller's body metrics blob.
func (c *AuthController) SetMetrics(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())

	var body models.BodyMetrics
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.Error(w, http.StatusBadRequest, "Missing required metrics data")
		return
	}

	if err := c.service.SetMetrics(ident.Email, body); err != nil {
		respondErr(w, r, err, "Not found")
		return
	}
	response.Message(w, "Metrics saved")
}
