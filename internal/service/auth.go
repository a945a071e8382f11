package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ticklist/ticklist/internal/model"
	"github.com/ticklist/ticklist/internal/repository"
	"github.com/ticklist/ticklist/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
)

const sessionCookieName = "session_token"

type AuthService struct {
	userRepository     repository.UserRepository
	sessionRepository  repository.SessionRepository
	tokenCodec         *TokenCodec
	mailer             *Mailer
	isProduction       bool
	confirmTokenExpiry time.Duration
	sessionExpiry      time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	sessionRepository repository.SessionRepository,
	tokenCodec *TokenCodec,
	mailer *Mailer,
	isProduction bool,
	confirmTokenExpiry time.Duration,
	sessionExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository:     userRepository,
		sessionRepository:  sessionRepository,
		tokenCodec:         tokenCodec,
		mailer:             mailer,
		isProduction:       isProduction,
		confirmTokenExpiry: confirmTokenExpiry,
		sessionExpiry:      sessionExpiry,
	}
}

// Register creates an unconfirmed user and queues the confirmation email.
// Duplicate email or username surfaces as repository.ErrDuplicateEmail /
// repository.ErrDuplicateUsername.
func (s *AuthService) Register(email, username, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)

	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, ErrInvalidEmail
	}
	err = validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	err = validation.ValidatePassword(password)
	if err != nil {
		return nil, err
	}

	// Pre-checks give friendlier errors; the UNIQUE indexes still catch the
	// race between check and insert.
	_, err = s.userRepository.ByEmail(email)
	if err == nil {
		return nil, repository.ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	_, err = s.userRepository.ByUsername(username)
	if err == nil {
		return nil, repository.ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Confirmed:    false,
		CreatedAt:    time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID, "email", email)

	err = s.SendConfirmation(user)
	if err != nil {
		// The account exists either way; the user can hit resend.
		slog.Warn("failed to queue confirmation email", "error", err, "user_id", user.ID)
	}

	return user, nil
}

// Login authenticates by email and password. Unconfirmed users authenticate
// successfully; the confirmed gate is enforced per route, not here.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Confirm validates the token against the user and flips the confirmed flag.
// Confirming an already-confirmed user with a valid token is a no-op success.
func (s *AuthService) Confirm(user *model.User, token string) bool {
	if !s.tokenCodec.Validate(token, user.ID) {
		return false
	}

	if user.Confirmed {
		return true
	}

	err := s.userRepository.SetConfirmed(user.ID)
	if err != nil {
		slog.Error("failed to persist confirmation", "error", err, "user_id", user.ID)
		return false
	}

	user.Confirmed = true
	slog.Info("user confirmed", "user_id", user.ID)
	return true
}

// SendConfirmation generates a fresh token and queues the confirmation email.
func (s *AuthService) SendConfirmation(user *model.User) error {
	token, err := s.tokenCodec.Generate(user.ID, s.confirmTokenExpiry)
	if err != nil {
		return fmt.Errorf("failed to generate confirmation token: %w", err)
	}

	s.mailer.Enqueue(MailJob{
		Email:    user.Email,
		Username: user.Username,
		Token:    token,
	})
	return nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) UserByID(id int64) (*model.User, error) {
	return s.userRepository.ByID(id)
}

// CreateSession issues an opaque session token and persists it.
func (s *AuthService) CreateSession(user *model.User) (*model.Session, error) {
	token, err := generateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &model.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionExpiry),
	}

	err = s.sessionRepository.Create(session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// SessionUser resolves a session token to its user. Expired and unknown
// tokens both fail with repository.ErrSessionNotFound.
func (s *AuthService) SessionUser(token string) (*model.User, *model.Session, error) {
	session, err := s.sessionRepository.ByToken(token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepository.ByID(session.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

func (s *AuthService) DestroySession(token string) error {
	return s.sessionRepository.Delete(token)
}

func (s *AuthService) SetSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionCookieName is exposed for the auth middleware.
func SessionCookieName() string {
	return sessionCookieName
}

func generateSessionToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
