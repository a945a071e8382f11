package routes

import (
	"net/http"

	"github.com/ticklist/ticklist/internal/app"
	"github.com/ticklist/ticklist/internal/handler"
	"github.com/ticklist/ticklist/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService)
	task := handler.NewTaskHandler(app.TaskService)

	mux := http.NewServeMux()

	// Auth flow (rate limited on the state-changing routes)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("GET /logout", middleware.RequireAuth(auth.Logout))
	mux.HandleFunc("GET /register", middleware.RequireGuest(auth.RegisterPage))
	mux.HandleFunc("POST /register", rateLimiter(middleware.RequireGuest(auth.Register)))

	// Confirmation flow stays reachable for unconfirmed sessions
	mux.HandleFunc("GET /confirm/{token}", middleware.RequireAuth(auth.Confirm))
	mux.HandleFunc("GET /confirm", middleware.RequireAuth(auth.ResendConfirmation))
	mux.HandleFunc("GET /unconfirmed", auth.UnconfirmedPage)

	// Tasks - confirmed accounts only. The confirmed check is applied per
	// route instead of globally so it cannot run ahead of session loading.
	mux.HandleFunc("GET /{$}", middleware.RequireConfirmed(task.ListPage))
	mux.HandleFunc("GET /add", middleware.RequireConfirmed(task.AddPage))
	mux.HandleFunc("POST /add", middleware.RequireConfirmed(task.Add))
	mux.HandleFunc("GET /delete/{id}", middleware.RequireConfirmed(task.Delete))
	mux.HandleFunc("GET /change/{id}", middleware.RequireConfirmed(task.ChangePage))
	mux.HandleFunc("POST /change/{id}", middleware.RequireConfirmed(task.Change))

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService),
		middleware.WithURLPath,
	)

	return handler
}
