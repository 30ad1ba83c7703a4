package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/officedesk/officeops-backend-go/internal/config"
	appHTTP "github.com/officedesk/officeops-backend-go/internal/handler/http"
	"github.com/officedesk/officeops-backend-go/internal/pkg/jwt"
	"github.com/officedesk/officeops-backend-go/internal/pkg/snapshot"
	"github.com/officedesk/officeops-backend-go/internal/repository/memstore"
	activityService "github.com/officedesk/officeops-backend-go/internal/service/activity"
	announcementService "github.com/officedesk/officeops-backend-go/internal/service/announcement"
	authService "github.com/officedesk/officeops-backend-go/internal/service/auth"
	inventoryService "github.com/officedesk/officeops-backend-go/internal/service/inventory"
	leaveService "github.com/officedesk/officeops-backend-go/internal/service/leave"
	loanService "github.com/officedesk/officeops-backend-go/internal/service/loan"
	notificationService "github.com/officedesk/officeops-backend-go/internal/service/notification"
	userService "github.com/officedesk/officeops-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	snapStore, err := snapshot.NewSQLiteStore(cfg.Snapshot.Path)
	if err != nil {
		fmt.Println("Error opening snapshot store:", err)
		return
	}

	store, err := memstore.New(ctx, snapStore, memstore.SeedConfig{
		AdminUsername: cfg.Seed.AdminUsername,
		AdminPassword: cfg.Seed.AdminPassword,
		AdminEmail:    cfg.Seed.AdminEmail,
	})
	if err != nil {
		fmt.Println("Error loading store:", err)
		return
	}

	userRepo := memstore.NewUserRepository(store)
	codeRepo := memstore.NewRegistrationRepository(store)
	leaveRepo := memstore.NewLeaveRepository(store)
	loanRepo := memstore.NewLoanRepository(store)
	announcementRepo := memstore.NewAnnouncementRepository(store)
	activityRepo := memstore.NewActivityRepository(store)
	inventoryRepo := memstore.NewInventoryRepository(store)
	notificationRepo := memstore.NewNotificationRepository(store)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, userRepo)
	authSvc := authService.NewAuthService(userRepo, codeRepo, jwtSvc, notificationSvc)
	userSvc := userService.NewUserService(userRepo, notificationSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notificationSvc)
	loanSvc := loanService.NewLoanService(loanRepo, inventoryRepo, notificationSvc)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, userRepo, notificationSvc)
	activitySvc := activityService.NewActivityService(activityRepo, userRepo, notificationSvc)
	inventorySvc := inventoryService.NewInventoryService(inventoryRepo)

	router := appHTTP.NewRouter(jwtSvc, cfg.App.Env, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Registration: appHTTP.NewRegistrationHandler(authSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Loan:         appHTTP.NewLoanHandler(loanSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Activity:     appHTTP.NewActivityHandler(activitySvc),
		Inventory:    appHTTP.NewInventoryHandler(inventorySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
