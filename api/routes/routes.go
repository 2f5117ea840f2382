package routes

import (
	"time"

	"notely/api/handler"
	"notely/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Notes          *handler.NoteHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	OTPRate        *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	noteHandler *handler.NoteHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Notes:          noteHandler,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		OTPRate:        middleware.NewRateLimiter(rate.Limit(1), 3, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.POST("/auth/signup", r.Auth.Signup, r.AuthRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.AuthRate.Middleware())
	e.POST("/auth/otp/send", r.Auth.SendOTP, r.OTPRate.Middleware())
	e.POST("/auth/otp/verify", r.Auth.VerifyOTP, r.AuthRate.Middleware())
	e.POST("/auth/password/reset", r.Auth.ResetPassword, r.AuthRate.Middleware())
	e.POST("/auth/logout", r.Auth.Logout, r.AuthMiddleware.RequireAuth)

	e.GET("/me", r.Auth.Me, r.AuthMiddleware.RequireAuth)

	notes := e.Group("/notes", r.AuthMiddleware.RequireAuth)
	notes.POST("", r.Notes.Create)
	notes.GET("", r.Notes.List)
	notes.GET("/date", r.Notes.ListByDate)
	notes.GET("/:id", r.Notes.Get)
	notes.PATCH("/:id", r.Notes.Update)
	notes.DELETE("/:id", r.Notes.Delete)
}
