package session

import (
	"context"
	"sync"
)

// Static is an in-memory Session shared by every request. It backs tests and
// tooling that run without cookies.
type Static struct {
	mu        sync.Mutex
	token     string
	admin     Admin
	destroyed int
}

var _ Session = (*Static)(nil)

func NewStatic(token string, a Admin) *Static {
	return &Static{token: token, admin: a}
}

func (s *Static) Token(context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Static) Admin(context.Context) (Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin, s.token != ""
}

func (s *Static) Start(_ context.Context, token string, a Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.admin = token, a
	return nil
}

func (s *Static) Destroy(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.admin = "", Admin{}
	s.destroyed++
	return nil
}

// Destroyed reports how many times the session was torn down.
func (s *Static) Destroyed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}
