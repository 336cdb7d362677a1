package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facilityops/hvac-backend-go/internal/config"
	appHTTP "github.com/facilityops/hvac-backend-go/internal/handler/http"
	"github.com/facilityops/hvac-backend-go/internal/pkg/clock"
	"github.com/facilityops/hvac-backend-go/internal/pkg/cron"
	"github.com/facilityops/hvac-backend-go/internal/pkg/database"
	"github.com/facilityops/hvac-backend-go/internal/pkg/jwt"
	"github.com/facilityops/hvac-backend-go/internal/pkg/ttlstore"
	"github.com/facilityops/hvac-backend-go/internal/repository/postgresql"
	attendanceService "github.com/facilityops/hvac-backend-go/internal/service/attendance"
	locationService "github.com/facilityops/hvac-backend-go/internal/service/location"
	notificationService "github.com/facilityops/hvac-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	flags := ttlstore.New(time.Minute)
	defer flags.Close()

	userRepo := postgresql.NewUserRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	activityRepo := postgresql.NewActivityLogRepository(db)

	clk := clock.System()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, flags)
	locationSvc := locationService.NewLocationService(siteRepo, userRepo, cfg.Attendance.DefaultRadiusMeters)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, locationSvc, activityRepo, clk, cfg.Attendance.MinWorkHours)
	notificationSvc := notificationService.NewNotificationService(attendanceRepo, notificationRepo, settingsRepo, clk)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(notificationSvc, flags, clk).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, locationSvc)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:               cfg.App.Env,
		AllowedOrigins:    cfg.App.AllowedOrigins,
		WebhookAPIKeyHash: cfg.Webhook.APIKeyHash,
	}, JWTService, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Close(); err != nil {
		fmt.Println("Server close error:", err)
	}
}
