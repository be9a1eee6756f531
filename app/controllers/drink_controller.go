package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/nightcap/app/services"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"github.com/shashiranjanraj/nightcap/pkg/bind"
	"github.com/shashiranjanraj/nightcap/pkg/response"
	"gorm.io/gorm"
)

type DrinkController struct {
	service *services.DrinkService
}

func NewDrinkController(db *gorm.DB, cat *catalog.Catalog) *DrinkController {
	return &DrinkController{service: services.NewDrinkService(db, cat)}
}

// Add logs a drink into a session. The body is form-encoded: drink_type,
// custom_name, custom_abv, liquid_ounces (the latter doubles as the shot
// count for the mixed-drink families).
func (c *DrinkController) Add(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	sessionID := chi.URLParam(r, "session_id")

	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	drink, err := c.service.Add(ident.Email, sessionID, services.AddDrinkInput{
		DrinkType:    r.PostFormValue("drink_type"),
		CustomName:   r.PostFormValue("custom_name"),
		CustomABV:    r.PostFormValue("custom_abv"),
		LiquidOunces: r.PostFormValue("liquid_ounces"),
	})
	if err != nil {
		respondErr(w, r, err, "Session not found or unauthorized")
		return
	}

	response.OK(w, map[string]interface{}{
		"message": "Drink added",
		"drink":   drink,
	})
}

// Update applies an increment/decrement action to a drink's count.
func (c *DrinkController) Update(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())
	sessionID := chi.URLParam(r, "session_id")
	drinkID := chi.URLParam(r, "drink_id")

	var body struct {
		Action string `json:"action"`
	}
	if _, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.service.Update(ident.Email, sessionID, drinkID, body.Action)
	if err != nil {
		respondErr(w, r, err, "Drink ID not found in session or unauthorized")
		return
	}

	if result.Removed {
		response.OK(w, map[string]interface{}{
			"message":    "Drink removed",
			"removed_id": result.ID,
		})
		return
	}

	message := "Drink count incremented"
	if body.Action == "decrement" {
		message = "Drink count decremented"
	}
	response.OK(w, map[string]interface{}{
		"message":  message,
		"id":       result.ID,
		"calories": result.Calories,
		"count":    result.Count,
	})
}
