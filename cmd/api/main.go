package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/config"
	appHTTP "github.com/stafftrack/attendance-backend-go/internal/handler/http"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/cron"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/flash"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafftrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/stafftrack/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/stafftrack/attendance-backend-go/internal/service/dashboard"
	departmentService "github.com/stafftrack/attendance-backend-go/internal/service/department"
	dutyService "github.com/stafftrack/attendance-backend-go/internal/service/duty"
	"github.com/stafftrack/attendance-backend-go/internal/service/export"
	leaveService "github.com/stafftrack/attendance-backend-go/internal/service/leave"
	staffService "github.com/stafftrack/attendance-backend-go/internal/service/staff"
	todoService "github.com/stafftrack/attendance-backend-go/internal/service/todo"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	staffRepo := postgresql.NewStaffProfileRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	todoRepo := postgresql.NewTodoRepository(db)
	dutyRepo := postgresql.NewDutyRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	flashes := flash.NewStore()

	authSvc := authService.NewAuthService(db, userRepo, staffRepo, jwtSvc)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo, flashes)
	exportSvc := export.NewExportService(attendanceSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	todoSvc := todoService.NewTodoService(todoRepo)
	dutySvc := dutyService.NewDutyService(dutyRepo, userRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, leaveRepo)

	if created, err := departmentSvc.SeedDefaults(context.Background()); err != nil {
		log.Fatal("Failed to seed departments: ", err)
	} else if created > 0 {
		log.Printf("Seeded %d default departments", created)
	}

	scheduler := cron.NewScheduler()
	cron.NewDutyJobs(dutyRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, exportSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Todo:       appHTTP.NewTodoHandler(todoSvc),
		Duty:       appHTTP.NewDutyHandler(dutySvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Staff:      appHTTP.NewStaffHandler(staffSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
