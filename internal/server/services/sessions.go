package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/server/auth"
	"github.com/dmitrijs2005/airlineadmin/internal/server/config"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Identity is the authenticated user behind a session cookie.
type Identity struct {
	SessionID string
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// SessionService issues, resolves and ends login sessions. The cookie
// value is a signed token naming a row in the sessions table; deleting
// the row revokes the cookie.
type SessionService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	jwtSecret        []byte
	validityDuration time.Duration

	now   func() time.Time
	newID func() string
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		db:               db,
		repomanager:      m,
		jwtSecret:        []byte(cfg.SecretKey),
		validityDuration: cfg.SessionValidityDuration,
		now:              time.Now,
		newID:            uuid.NewString,
	}
}

// Start opens a session for user and returns the signed cookie value.
func (s *SessionService) Start(ctx context.Context, user *models.User) (string, *Identity, error) {
	now := s.now()
	session := &models.Session{
		ID:        s.newID(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.validityDuration),
	}

	if err := s.repomanager.Sessions(s.db).Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("error creating session: %w", err)
	}

	token, err := auth.GenerateToken(session.ID, user.ID, user.Username, s.jwtSecret, session.ExpiresAt)
	if err != nil {
		return "", nil, fmt.Errorf("error signing session: %w", err)
	}

	return token, &Identity{
		SessionID: session.ID,
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Resolve maps a cookie value to its Identity. Tampered tokens yield
// common.ErrInvalidToken; expired or ended sessions yield
// common.ErrSessionExpired.
func (s *SessionService) Resolve(ctx context.Context, token string) (*Identity, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	userID, _ := claims.UserID()

	repo := s.repomanager.Sessions(s.db)

	session, err := repo.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrSessionExpired
		}
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	if session.UserID != userID {
		return nil, common.ErrInvalidToken
	}

	if session.Expired(s.now()) {
		_ = repo.Delete(ctx, session.ID)
		return nil, common.ErrSessionExpired
	}

	return &Identity{
		SessionID: session.ID,
		UserID:    session.UserID,
		Username:  claims.Username,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// End deletes the session named by token. Unsigned or unknown tokens are
// ignored.
func (s *SessionService) End(ctx context.Context, token string) error {
	id, err := auth.SessionID(token, s.jwtSecret)
	if err != nil {
		return nil
	}

	if err := s.repomanager.Sessions(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions whose lifetime has passed.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repomanager.Sessions(s.db).DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error purging sessions: %w", err)
	}
	return n, nil
}
