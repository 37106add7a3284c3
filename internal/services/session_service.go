package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
)

// SessionService implements "login" as a local role selection: no password,
// no external identity provider.
type SessionService struct {
	users  models.UsersRepo
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionService(users models.UsersRepo, secret []byte, ttl time.Duration) *SessionService {
	return &SessionService{
		users:  users,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (ss *SessionService) TTL() time.Duration {
	return ss.ttl
}

// Login registers the chosen identity and returns a signed session token.
// A missing id gets a fresh uuid, so each guest login is a new identity.
func (ss *SessionService) Login(in models.LoginInput) (models.User, string, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	if err := models.ValidateInput(in); err != nil {
		return models.User{}, "", err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	user := ss.users.RegisterUser(models.User{ID: in.ID, Role: in.Role, Name: in.Name})
	token, err := helpers.IssueToken(ss.secret, user, ss.ttl, ss.now())
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to start session: %w", err)
	}
	return user, token, nil
}

func (ss *SessionService) Me(claims *helpers.SessionClaims) models.User {
	if claims.IsGuest() && claims.UserID() == "" {
		return models.User{Role: models.RoleGuest}
	}
	if u, ok := ss.users.GetUser(claims.UserID()); ok {
		return u
	}
	return claims.User()
}
