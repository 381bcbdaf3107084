package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stafftrack/attendance-backend-go/internal/config"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Todo       TodoHandler
	Duty       DutyHandler
	Dashboard  DashboardHandler
	Department DepartmentHandler
	Staff      StaffHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "stafftrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Barcode scanning authenticates by barcode value, not by session,
		// but only from allowed attendance systems
		r.Group(func(r chi.Router) {
			r.Use(middleware.IPRestricted(cfg.Attendance.AllowedIPs))
			r.Post("/attendance/barcode", h.Attendance.BarcodeAuth)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				// Sign actions are limited to office systems as well
				r.Group(func(r chi.Router) {
					r.Use(middleware.IPRestricted(cfg.Attendance.AllowedIPs))
					r.Post("/sign", h.Attendance.Sign)
				})

				r.Get("/today", h.Attendance.Today)
				r.Get("/recent", h.Attendance.MyRecent)
				r.Get("/status-message", h.Attendance.StatusMessage)
				r.Post("/notes", h.Attendance.SaveNote)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
					r.Get("/export", h.Attendance.Export)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/", h.Leave.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/review", h.Leave.Review)
				})
			})

			r.Route("/todos", func(r chi.Router) {
				r.Post("/", h.Todo.Create)
				r.Get("/", h.Todo.List)
				r.Patch("/{id}/status", h.Todo.UpdateStatus)
				r.Delete("/{id}", h.Todo.Delete)
			})

			r.Route("/duties", func(r chi.Router) {
				r.Get("/", h.Duty.List)
				r.Patch("/{id}/status", h.Duty.UpdateStatus)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Duty.Create)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.Summary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/chart", h.Dashboard.Chart)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Department.Create)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/my-barcode", h.Staff.MyBarcode)
				r.Get("/my-barcode/image", h.Staff.MyBarcodePNG)
			})
		})
	})

	return r
}
