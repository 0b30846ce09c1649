package service

import (
	"errors"

	"go.uber.org/zap"

	"bakery-service/internal/models"
	"bakery-service/internal/session"
	"bakery-service/internal/store"
	"bakery-service/internal/util"
)

// ErrInvalidCredentials is the one static failure the login form shows
var ErrInvalidCredentials = errors.New("email ou senha incorretos")

// AuthService is the admin gate: a capability check against a configured
// literal credential pair, not a security boundary. No hashing, no lockout.
type AuthService struct {
	email    string
	password string
	logger   *zap.Logger
}

// NewAuthService creates an auth service with the configured credential pair
func NewAuthService(email, password string) *AuthService {
	return &AuthService{
		email:    email,
		password: password,
		logger:   util.GetLogger(),
	}
}

// Login compares the submitted pair against the configured one. On success
// it marks the session as admin and navigates to the dashboard.
func (s *AuthService) Login(sess *session.Session, email, password string) error {
	if email != s.email || password != s.password {
		util.AdminLoginFailuresTotal.Inc()
		s.logger.Warn("Admin login rejected", zap.String("email", email))
		return ErrInvalidCredentials
	}

	sess.Dispatcher.Dispatch(store.LoginAdmin{})
	sess.Dispatcher.Dispatch(store.SetSection{Section: models.SectionAdminDashboard})

	util.AdminLoginsTotal.Inc()
	s.logger.Info("Admin logged in", zap.String("session_id", sess.ID))
	return nil
}

// Logout clears the admin flag and navigates home. LogoutAdmin alone would
// leave the section where it was, so the navigation is dispatched explicitly.
func (s *AuthService) Logout(sess *session.Session) {
	sess.Dispatcher.Dispatch(store.LogoutAdmin{})
	sess.Dispatcher.Dispatch(store.SetSection{Section: models.SectionHome})
}
