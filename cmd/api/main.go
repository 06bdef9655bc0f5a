package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/config"
	appHTTP "github.com/facetrack/attendance-backend-go/internal/handler/http"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack/attendance-backend-go/internal/pkg/email"
	"github.com/facetrack/attendance-backend-go/internal/pkg/faceid"
	"github.com/facetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/facetrack/attendance-backend-go/internal/pkg/storage"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/facetrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/facetrack/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/facetrack/attendance-backend-go/internal/service/dashboard"
	deviceService "github.com/facetrack/attendance-backend-go/internal/service/device"
	employeeService "github.com/facetrack/attendance-backend-go/internal/service/employee"
	"github.com/facetrack/attendance-backend-go/internal/service/file"
	reportService "github.com/facetrack/attendance-backend-go/internal/service/report"
	shiftService "github.com/facetrack/attendance-backend-go/internal/service/shift"
	userService "github.com/facetrack/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	faceClient := faceid.NewClient(cfg.FaceAPI.BaseURL, cfg.FaceAPI.Timeout)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(userRepo, employeeRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo, fileService, faceClient, emailService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, shiftRepo, fileService)
	deviceSvc := deviceService.NewDeviceService(deviceRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo)
	reportSvc := reportService.NewReportService(reportRepo, fileService)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	deviceHandler := appHTTP.NewDeviceHandler(deviceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		deviceSvc,
		authHandler,
		employeeHandler,
		attendanceHandler,
		deviceHandler,
		shiftHandler,
		userHandler,
		reportHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
