package storage

import (
	"context"
	"time"

	"github.com/iudanet/rollbook/internal/models"
)

// Session представляет закэшированную сессию пользователя.
// AccessToken хранится в bolt в зашифрованном виде; ExpiresAt
// извлекается из claims токена при сохранении.
type Session struct {
	ExpiresAt   time.Time   `json:"expires_at"`
	UserID      string      `json:"user_id"`
	AccessToken string      `json:"access_token"`
	Role        models.Role `json:"role"`
}

// IsExpired reports whether the cached token has expired
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// SessionStorage определяет интерфейс хранения сессии на клиенте
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if no session exists.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session
	DeleteSession(ctx context.Context) error
}
