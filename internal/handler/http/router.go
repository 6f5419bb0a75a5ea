package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	allowedOrigins []string,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-lite"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	// Liveness
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"HRMS Lite API","status":"running"}`))
	})

	r.Route("/employees", func(r chi.Router) {
		r.Post("/", employeeHandler.CreateEmployee)
		r.Get("/", employeeHandler.ListEmployees)
		r.Delete("/{id}", employeeHandler.DeleteEmployee)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Post("/", attendanceHandler.MarkAttendance)
		r.Get("/{employee_id}", attendanceHandler.GetHistory)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", dashboardHandler.GetSnapshot)
	})

	return r
}
