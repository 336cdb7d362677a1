package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/facilityops/hvac-backend-go/internal/handler/http/middleware"
	"github.com/facilityops/hvac-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env               string
	AllowedOrigins    []string
	WebhookAPIKeyHash string
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hvac-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Webhook surface for external record-store integrations.
		r.Route("/integrations/attendance", func(r chi.Router) {
			r.Use(middleware.APIKeyRequired(cfg.WebhookAPIKeyHash))
			r.Post("/", attendanceHandler.Create)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/{id}/check-out", attendanceHandler.CheckOut)

				r.Get("/validate-location/{userId}", attendanceHandler.ValidateLocation)
				r.Get("/user-sites/{userId}", attendanceHandler.GetUserSites)

				r.Get("/site/{siteId}", attendanceHandler.GetBySite)
				r.Get("/site/{siteId}/report", attendanceHandler.GetSiteReport)
				r.Get("/overall-report", attendanceHandler.GetOverallReport)

				r.Get("/user/{userId}", attendanceHandler.GetByUser)
				r.Get("/user/{userId}/today", attendanceHandler.GetTodayByUser)

				r.Get("/{id}", attendanceHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", attendanceHandler.Create)
					r.Put("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})
		})
	})
	return r
}
