package http

import (
	"encoding/json"
	"net/http"

	"plantdiary/internal/auth"
	"plantdiary/internal/config"
	"plantdiary/internal/http/handler"
	mw "plantdiary/internal/http/middleware"
	"plantdiary/internal/notify"
	"plantdiary/internal/plant"
	"plantdiary/internal/profile"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, mailer notify.Mailer) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok":   true,
				"data": map[string]string{"status": "up"},
			})
		})

		ah := &handler.AuthHandler{Svc: &auth.Service{DB: db, JWT: jwtSvc}}
		r.Post("/signup", ah.Signup)
		r.Post("/signin", ah.Signin)
		r.Post("/change-password", ah.ChangePassword)
		r.Post("/delete-account", ah.DeleteAccount)

		rh := &handler.ReminderHandler{Mailer: mailer}
		r.Post("/send-reminder", rh.SendReminder)

		ph := &handler.PlantHandler{Svc: &plant.Service{DB: db}}
		r.Route("/plants", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Get("/", ph.List)
			r.Post("/", ph.Add)
			r.Put("/", ph.Update)
			r.Delete("/", ph.Remove)
		})

		prh := &handler.ProfileHandler{Svc: &profile.Service{DB: db}}
		r.Route("/profile", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Get("/", prh.Get)
			r.Post("/", prh.Save)
		})
	})

	return r
}
