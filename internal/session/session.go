package session

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

const (
	keyToken = "admin_token"
	keyAdmin = "admin_user"
)

// Admin is the signed-in administrator as reported by the backend at login.
type Admin struct {
	ID       string
	Username string
	Email    string
	Role     string
}

// Session holds the admin credentials for the current request. Admin panels
// receive it as a dependency and never look at cookies themselves.
type Session interface {
	Token(ctx context.Context) string
	Admin(ctx context.Context) (Admin, bool)
	Start(ctx context.Context, token string, a Admin) error
	Destroy(ctx context.Context) error
}

func init() {
	gob.Register(Admin{})
}

type Config struct {
	Lifetime time.Duration
	Secure   bool
}

// Store keeps sessions in a cookie-keyed scs session manager.
type Store struct {
	sm *scs.SessionManager
}

var _ Session = (*Store)(nil)

func New(cfg Config) *Store {
	sm := scs.New()

	sm.Lifetime = cfg.Lifetime
	if sm.Lifetime <= 0 {
		sm.Lifetime = 24 * time.Hour
	}
	sm.Cookie.Name = "portal_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.Secure

	return &Store{sm: sm}
}

// LoadAndSave loads the session from the request cookie before next runs and
// commits it afterwards.
func (s *Store) LoadAndSave(next http.Handler) http.Handler {
	return s.sm.LoadAndSave(next)
}

func (s *Store) Token(ctx context.Context) string {
	return s.sm.GetString(ctx, keyToken)
}

func (s *Store) Admin(ctx context.Context) (Admin, bool) {
	a, ok := s.sm.Get(ctx, keyAdmin).(Admin)
	return a, ok
}

// Start renews the session token to prevent fixation and stores the
// credentials.
func (s *Store) Start(ctx context.Context, token string, a Admin) error {
	if err := s.sm.RenewToken(ctx); err != nil {
		return err
	}

	s.sm.Put(ctx, keyToken, token)
	s.sm.Put(ctx, keyAdmin, a)
	return nil
}

func (s *Store) Destroy(ctx context.Context) error {
	return s.sm.Destroy(ctx)
}
