package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/middleware"
	"github.com/officedesk/officeops-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Registration RegistrationHandler
	User         UserHandler
	Leave        LeaveHandler
	Loan         LoanHandler
	Announcement AnnouncementHandler
	Activity     ActivityHandler
	Inventory    InventoryHandler
	Notification NotificationHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "officeops-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/check-setup", h.Auth.CheckSetup)
			r.Post("/setup", h.Auth.CompleteSetup)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.User.List)
				r.Get("/me", h.User.Me)
				r.Patch("/me", h.User.UpdateMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAccountView))
					r.Get("/accounts", h.User.ListAccounts)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserManagement))
					r.Post("/{userID}/approve", h.User.Approve)
					r.Patch("/{userID}/status", h.User.SetStatus)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{userID}/permissions", h.User.SetPermissions)
				})

				r.Get("/{userID}", h.User.Get)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManagement))
				r.Post("/codes", h.Registration.GenerateCode)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionApprovalsLeave))
					r.Get("/", h.Leave.ListAll)
					r.Patch("/{requestID}/decision", h.Leave.Decide)
				})
			})

			r.Route("/loans", func(r chi.Router) {
				r.Post("/", h.Loan.Submit)
				r.Get("/my", h.Loan.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionApprovalsBorrow))
					r.Get("/", h.Loan.ListAll)
					r.Patch("/{requestID}/decision", h.Loan.Decide)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.ListVisible)
				r.Post("/{announcementID}/read", h.Announcement.Acknowledge)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionContentAdmin))
					r.Post("/", h.Announcement.Create)
					r.Delete("/{announcementID}", h.Announcement.Delete)
				})
			})

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", h.Activity.ListVisible)
				r.Post("/{activityID}/rsvp", h.Activity.RSVP)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionContentAdmin))
					r.Post("/", h.Activity.Create)
				})
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/items", h.Inventory.ListItems)
				r.Get("/categories", h.Inventory.ListCategories)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/items", h.Inventory.AddItem)
					r.Delete("/items/{itemID}", h.Inventory.DeleteItem)
					r.Post("/categories", h.Inventory.AddCategory)
					r.Delete("/categories/{categoryID}", h.Inventory.DeleteCategory)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.ListMine)
				r.Post("/read-all", h.Notification.MarkAllRead)
			})
		})
	})
	return r
}
