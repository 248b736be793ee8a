package http

import (
	"net/http"

	"github.com/eventplug/signup-api/internal/application/otp"
	"github.com/eventplug/signup-api/internal/application/user"
	"github.com/eventplug/signup-api/internal/config"
	"github.com/eventplug/signup-api/internal/domain"
	"github.com/eventplug/signup-api/internal/transport/http/handler"
	appmiddleware "github.com/eventplug/signup-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to public endpoints that
	// either send mail or create records.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	otpSvc := otp.NewService(otp.ServiceDeps{
		OtpRepo: deps.OtpRepo,
		Mailer:  deps.Mailer,
		Expiry:  cfg.OTPExpiry,
	})
	userDeps := user.ServiceDeps{
		UserRepo: deps.UserRepo,
		OtpSvc:   otpSvc,
	}
	if deps.JWTProvider != nil {
		userDeps.Signer = deps.JWTProvider
	}
	userSvc := user.NewService(userDeps)

	healthH := handler.NewHealthHandler()
	otpH := handler.NewOTPHandler(otpSvc)
	userH := handler.NewUserHandler(userSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes ────────────────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/otp/send", otpH.Send)
		r.With(sensitiveRL.Limit).Post("/otp/verify", otpH.Verify)
		r.With(sensitiveRL.Limit).Post("/otp/resend", otpH.Resend)

		r.With(sensitiveRL.Limit).Post("/users", userH.Register)
		r.With(sensitiveRL.Limit).Post("/users/activate", userH.Activate)
		r.Get("/users", userH.GetByEmail)
		r.Get("/users/{id}", userH.Get)

		// ── Admin routes ─────────────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

			r.Get("/admin/users", userH.List)
		})
	})

	return r
}
