package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/config"
	appHTTP "github.com/hrms-lite/hrms-lite-backend-go/internal/handler/http"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-lite/hrms-lite-backend-go/internal/service/attendance"
	dashboardService "github.com/hrms-lite/hrms-lite-backend-go/internal/service/dashboard"
	employeeService "github.com/hrms-lite/hrms-lite-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	// Schema init runs exactly once, before any request is served.
	if err := postgresql.Migrate(context.Background(), db); err != nil {
		log.Fatal("Error migrating database: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg.CORS.AllowedOrigins,
		employeeHandler,
		attendanceHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Shutdown error: ", err)
	}
}
