package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/nightcap/app/services"
	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"github.com/shashiranjanraj/nightcap/pkg/bind"
	"github.com/shashiranjanraj/nightcap/pkg/response"
	"github.com/shashiranjanraj/nightcap/pkg/session"
	"gorm.io/gorm"
)

type SessionController struct {
	service *services.SessionService
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{service: services.NewSessionService(db)}
}

// List returns all of the caller's tracking sessions newest-first, with a
// grand net-calorie total across them.
func (c *SessionController) List(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())

	summaries, grandNet, err := c.service.List(ident.Email)
	if err != nil {
		respondErr(w, r, err, "Not found")
		return
	}

	response.OK(w, map[string]interface{}{
		"sessions":           summaries,
		"grand_net_calories": grandNet,
	})
}

// Create starts a new tracking session and makes it the caller's current one.
func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())

	var body struct {
		Name string `json:"name"`
	}
	if _, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := c.service.Create(ident.Email, body.Name)
	if err != nil {
		respondErr(w, r, err, "Not found")
		return
	}

	authSess := session.FromCtx(r)
	authSess.Set(session.KeyCurrentSession, sess.ID)
	authSess.Save(w) //nolint:errcheck

	response.OK(w, map[string]string{
		"message":    "Session created",
		"session_id": sess.ID,
	})
}

// Delete removes a session plus all of its drinks and exercises, and clears
// the current-session pointer if it pointed at the deleted one.
func (c *SessionController) Delete(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	sessionID := chi.URLParam(r, "session_id")

	if err := c.service.Delete(ident.Email, sessionID); err != nil {
		respondErr(w, r, err, "Session not found or unauthorized")
		return
	}

	if ident.CurrentSessionID == sessionID {
		authSess := session.FromCtx(r)
		authSess.Delete(session.KeyCurrentSession)
		authSess.Save(w) //nolint:errcheck
	}

	response.Message(w, "Session and associated data deleted successfully")
}
