package http

import (
	"log/slog"
	"os"

	"github.com/facetrack/attendance-backend-go/internal/domain/device"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/facetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	deviceService device.DeviceService,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	deviceHandler DeviceHandler,
	shiftHandler ShiftHandler,
	userHandler UserHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", authHandler.Login)

		// Hardware check-in, gated by device API key instead of a JWT.
		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceAuth(deviceService))
			r.Post("/attendance/check-in", attendanceHandler.CheckIn)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", authHandler.Logout)

			// Mobile surface: own profile, password, history.
			r.Get("/users/{id}", userHandler.GetUser)
			r.Post("/users/change-password", userHandler.ChangePassword)
			r.Get("/attendance/employee/{id}", attendanceHandler.EmployeeHistory)

			// Console surface, managers and admins only.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.ListEmployees)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Get("/{id}", employeeHandler.GetEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
					r.Post("/{id}/lock", employeeHandler.LockEmployee)
					r.Post("/{id}/unlock", employeeHandler.UnlockEmployee)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListAttendance)
					r.Post("/", attendanceHandler.CreateAttendance)
					r.Get("/{id}", attendanceHandler.GetAttendance)
					r.Delete("/{id}", attendanceHandler.DeleteAttendance)
				})

				r.Route("/devices", func(r chi.Router) {
					r.Get("/", deviceHandler.ListDevices)
					r.Post("/", deviceHandler.CreateDevice)
					r.Get("/{id}", deviceHandler.GetDevice)
					r.Put("/{id}", deviceHandler.UpdateDevice)
					r.Delete("/{id}", deviceHandler.DeleteDevice)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", shiftHandler.ListShifts)
					r.Post("/", shiftHandler.CreateShift)
					r.Get("/{id}", shiftHandler.GetShift)
					r.Put("/{id}", shiftHandler.UpdateShift)
					r.Delete("/{id}", shiftHandler.DeleteShift)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.ListUsers)
					r.Post("/", userHandler.CreateUser)
					r.Put("/{id}", userHandler.UpdateUser)
					r.Delete("/{id}", userHandler.DeleteUser)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/", reportHandler.ListReports)
					r.Post("/", reportHandler.GenerateReport)
					r.Get("/{id}/download", reportHandler.DownloadReport)
					r.Delete("/{id}", reportHandler.DeleteReport)
				})

				r.Route("/dashboard", func(r chi.Router) {
					r.Get("/", dashboardHandler.GetDashboard)
					r.Get("/monthly", dashboardHandler.GetMonthly)
				})
			})
		})
	})

	return r
}
