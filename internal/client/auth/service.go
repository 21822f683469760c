package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/models"
	"github.com/iudanet/rollbook/pkg/api"
)

// ErrSessionExpired возвращается при попытке восстановить истекшую сессию
var ErrSessionExpired = errors.New("session expired, login required")

// LoginClient определяет часть шлюза, нужную для аутентификации
type LoginClient interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	SetAccessToken(token string)
}

// Service управляет сессией пользователя на клиенте
type Service struct {
	gw       LoginClient
	sessions storage.SessionStorage
	logger   *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(gw LoginClient, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		gw:       gw,
		sessions: sessions,
		logger:   logger,
	}
}

// Login выполняет вход и сохраняет сессию.
// inviteCode нужен только при первом входе нового пользователя.
func (s *Service) Login(ctx context.Context, username, password, inviteCode string) (*storage.Session, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	resp, err := s.gw.Login(ctx, api.LoginRequest{
		Username:   username,
		Password:   password,
		InviteCode: inviteCode,
	})
	if err != nil {
		return nil, err
	}

	session := &storage.Session{
		ExpiresAt:   tokenExpiry(resp.AccessToken),
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		Role:        models.Role(resp.Role),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.gw.SetAccessToken(session.AccessToken)
	s.logger.Info("logged in", "user_id", session.UserID, "role", session.Role)
	return session, nil
}

// Restore поднимает сохраненную сессию после перезапуска процесса.
// Истекшая сессия удаляется и возвращается ErrSessionExpired.
func (s *Service) Restore(ctx context.Context) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		if err := s.sessions.DeleteSession(ctx); err != nil {
			s.logger.Warn("failed to delete expired session", "error", err)
		}
		return nil, ErrSessionExpired
	}

	s.gw.SetAccessToken(session.AccessToken)
	return session, nil
}

// Logout завершает сессию и забывает токен
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.gw.SetAccessToken("")
	return nil
}

// tokenExpiry извлекает срок жизни из claims токена без проверки
// подписи: подпись проверяет сервер, клиенту нужен только дедлайн
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
