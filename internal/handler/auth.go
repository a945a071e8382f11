package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ticklist/ticklist/internal/ctxkeys"
	"github.com/ticklist/ticklist/internal/repository"
	"github.com/ticklist/ticklist/internal/service"
	"github.com/ticklist/ticklist/internal/ui"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{
		authService: authService,
	}
}

func (h *authHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "login.html", ui.Data{})
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		ui.Render(w, r, "login.html", ui.Data{
			Error: "Email and password are required",
			Email: email,
		})
		return
	}

	user, err := h.authService.Login(email, password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", email)
		ui.Render(w, r, "login.html", ui.Data{
			Error: "Invalid email or password",
			Email: email,
		})
		return
	}

	session, err := h.authService.CreateSession(user)
	if err != nil {
		slog.Error("failed to create session", "error", err, "user_id", user.ID)
		ui.Render(w, r, "login.html", ui.Data{
			Error: "An error occurred. Please try again.",
			Email: email,
		})
		return
	}

	h.authService.SetSessionCookie(w, session)

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)

	if !user.Confirmed {
		http.Redirect(w, r, "/unconfirmed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())
	if session != nil {
		err := h.authService.DestroySession(session.Token)
		if err != nil {
			slog.Warn("failed to destroy session", "error", err, "user_id", session.UserID)
		}
	}

	h.authService.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *authHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "register.html", ui.Data{})
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.authService.Register(email, username, password)
	if err != nil {
		message := registerErrorMessage(err)
		ui.Render(w, r, "register.html", ui.Data{
			Error:    message,
			Email:    email,
			Username: username,
		})
		return
	}

	session, err := h.authService.CreateSession(user)
	if err != nil {
		slog.Error("failed to create session after registration", "error", err, "user_id", user.ID)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.authService.SetSessionCookie(w, session)
	http.Redirect(w, r, "/unconfirmed", http.StatusSeeOther)
}

func registerErrorMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return "An account with this email already exists"
	case errors.Is(err, repository.ErrDuplicateUsername):
		return "This username is already taken"
	default:
		return err.Error()
	}
}

// Confirm validates the token in the URL against the logged-in user.
// Invalid or expired tokens change nothing.
func (h *authHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	token := r.PathValue("token")

	if user.Confirmed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if !h.authService.Confirm(user, token) {
		slog.Warn("confirmation failed", "user_id", user.ID)
		ui.Render(w, r, "unconfirmed.html", ui.Data{
			Error: "The confirmation link is invalid or has expired.",
		})
		return
	}

	ui.Render(w, r, "message.html", ui.Data{
		Message: "You have confirmed your account. Thanks!",
	})
}

// ResendConfirmation queues a fresh confirmation email for the current user.
func (h *authHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	if user.Confirmed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	err := h.authService.SendConfirmation(user)
	if err != nil {
		slog.Error("failed to queue confirmation email", "error", err, "user_id", user.ID)
		ui.Render(w, r, "unconfirmed.html", ui.Data{
			Error: "Could not send the confirmation email. Please try again.",
		})
		return
	}

	ui.Render(w, r, "unconfirmed.html", ui.Data{
		Message: "A new confirmation email has been sent to " + user.Email + ".",
	})
}

func (h *authHandler) UnconfirmedPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user != nil && user.Confirmed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ui.Render(w, r, "unconfirmed.html", ui.Data{})
}
