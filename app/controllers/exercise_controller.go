package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/nightcap/app/services"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"github.com/shashiranjanraj/nightcap/pkg/bind"
	"github.com/shashiranjanraj/nightcap/pkg/response"
	"gorm.io/gorm"
)

type ExerciseController struct {
	service *services.ExerciseService
}

func NewExerciseController(db *gorm.DB, cat *catalog.Catalog) *ExerciseController {
	return &ExerciseController{service: services.NewExerciseService(db, cat)}
}

// Add logs an exercise into a session. Minutes is accepted as either a JSON
// number or a numeric string; the service parses and range-checks it.
func (c *ExerciseController) Add(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	sessionID := chi.URLParam(r, "session_id")

	var body struct {
		ExerciseType string      `json:"exercise_type"`
		Minutes      interface{} `json:"minutes"`
	}
	if _, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	rawMinutes := ""
	if body.Minutes != nil {
		rawMinutes = fmt.Sprint(body.Minutes)
	}

	exercise, err := c.service.Add(ident.Email, sessionID, body.ExerciseType, rawMinutes)
	if err != nil {
		respondErr(w, r, err, "Session not found or unauthorized")
		return
	}

	response.OK(w, map[string]interface{}{
		"message":  "Exercise added",
		"exercise": exercise,
	})
}

// Update applies an increment/decrement action to an exercise's duration.
func (c *ExerciseController) Update(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	sessionID := chi.URLParam(r, "session_id")
	exerciseID := chi.URLParam(r, "exercise_id")

	var body struct {
		Action string `json:"action"`
	}
	if _, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.service.Update(ident.Email, sessionID, exerciseID, body.Action)
	if err != nil {
		respondErr(w, r, err, "Exercise not found in session or unauthorized")
		return
	}

	if result.Removed {
		response.OK(w, map[string]interface{}{
			"message":    "Exercise removed",
			"removed_id": result.ID,
		})
		return
	}

	response.OK(w, map[string]interface{}{
		"message":         "Exercise updated",
		"id":              result.ID,
		"minutes":         result.Minutes,
		"calories_burned": result.CaloriesBurned,
	})
}
