package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/UmaDevi016/senior-caregiver/controllers"
)

// Controllers bundles every handler the router mounts.
type Controllers struct {
	Translate  *controllers.TranslateController
	Senior     *controllers.SeniorController
	Medication *controllers.MedicationController
	Schedule   *controllers.ScheduleController
	Scan       *controllers.ScanController
}

func SetupRouter(c Controllers) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS Configuration — the caregiver client may be served from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", controllers.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.Health)

		r.Post("/translate", c.Translate.Translate)

		r.Get("/senior/{id}", c.Senior.Get)
		r.Post("/senior/{id}", c.Senior.Update)

		r.Get("/medications", c.Medication.List)
		r.Post("/medications", c.Medication.Create)
		r.Delete("/medications/{id}", c.Medication.Delete)

		r.Get("/today-schedule", c.Schedule.TodaySchedule)
		r.Post("/acknowledge", c.Schedule.Acknowledge)
		r.Get("/adherence-summary", c.Schedule.AdherenceSummary)

		r.Post("/scan-prescription", c.Scan.Scan)
	})

	return r
}
