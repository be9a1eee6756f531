package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/nightcap/app/services"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"github.com/shashiranjanraj/nightcap/pkg/response"
	"gorm.io/gorm"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(db *gorm.DB, cat *catalog.Catalog) *DashboardController {
	return &DashboardController{service: services.NewDashboardService(db, cat)}
}

// Show returns the full dashboard snapshot for one tracking session.
func (c *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	sessionID := chi.URLParam(r, "session_id")

	snapshot, err := c.service.Snapshot(ident.Email, sessionID)
	if err != nil {
		respondErr(w, r, err, "Session not found or unauthorized")
		return
	}
	response.OK(w, snapshot)
}
