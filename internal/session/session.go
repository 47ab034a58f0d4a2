// Package session holds per-browser state: the resolved actor, the pending
// cart and the URL captured before a login redirect. The default backend is
// in-memory; a Redis backend can be swapped in for multi-instance setups.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/naturalsuds/soapshop/internal/model"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string     `json:"id"`
	Username  string     `json:"username,omitempty"`
	Role      string     `json:"role,omitempty"`
	Cart      model.Cart `json:"cart"`
	NextURL   string     `json:"next_url,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
}

func New(ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Cart:      model.Cart{},
		ExpiresAt: time.Now().Add(ttl),
	}
}

func (s *Session) Actor() model.Actor {
	return model.Actor{Username: s.Username, Role: s.Role}
}

// ClearActor removes every actor-identifying field. Idempotent; the cart is
// session state, not actor state, and survives logout.
func (s *Session) ClearActor() {
	s.Username = ""
	s.Role = ""
	s.NextURL = ""
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}
