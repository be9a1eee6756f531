// Package routes registers the HTTP API. Paths are flat verbs matching the
// single-page client; everything past login sits behind RequireAuth.
package routes

import (
	"github.com/shashiranjanraj/nightcap/app/controllers"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/shashiranjanraj/nightcap/pkg/middleware"
	"github.com/shashiranjanraj/nightcap/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI wires every endpoint onto the router.
func RegisterAPI(r *router.Router, db *gorm.DB, cat *catalog.Catalog) {
	authCtrl := controllers.NewAuthController(db)
	sessionCtrl := controllers.NewSessionController(db)
	drinkCtrl := controllers.NewDrinkController(db, cat)
	exerciseCtrl := controllers.NewExerciseController(db, cat)
	dashboardCtrl := controllers.NewDashboardController(db, cat)

	// Public: status answers for anonymous callers too.
	r.Post("/register", "auth.register", authCtrl.Register)
	r.Post("/login", "auth.login", authCtrl.Login)
	r.Post("/logout", "auth.logout", authCtrl.Logout)
	r.Get("/get_user_status", "auth.status", authCtrl.Status)

	protected := r.Group("/", middleware.RequireAuth)

	protected.Post("/set_user_metrics", "auth.metrics", authCtrl.SetMetrics)

	protected.Get("/get_sessions", "sessions.list", sessionCtrl.List)
	protected.Post("/create_session", "sessions.create", sessionCtrl.Create)
	protected.Delete("/delete_session/{session_id}", "sessions.delete", sessionCtrl.Delete)

	protected.Post("/add_drink/{session_id}", "drinks.add", drinkCtrl.Add)
	protected.Post("/update_drink/{session_id}/{drink_id}", "drinks.update", drinkCtrl.Update)

	protected.Post("/add_exercise/{session_id}", "exercises.add", exerciseCtrl.Add)
	protected.Post("/update_exercise/{session_id}/{exercise_id}", "exercises.update", exerciseCtrl.Update)

	protected.Get("/get_dashboard_data/{session_id}", "dashboard.show", dashboardCtrl.Show)
}
