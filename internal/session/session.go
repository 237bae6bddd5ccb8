package session

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
)

// Session is one live client connection.
type Session struct {
	ID       string
	Identity domain.Identity
	UserName string
	JoinedAt time.Time
	Outbox   *Outbox

	lastSeen atomic.Int64

	mu     sync.RWMutex
	scopes map[events.Scope]struct{}
}

func (s *Session) Touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load()).UTC()
}

// AddScopes records scopes and returns the ones that were not present yet.
func (s *Session) AddScopes(scopes ...events.Scope) []events.Scope {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := make([]events.Scope, 0, len(scopes))
	for _, scope := range scopes {
		if _, ok := s.scopes[scope]; ok {
			continue
		}
		s.scopes[scope] = struct{}{}
		added = append(added, scope)
	}
	return added
}

// RemoveScopes forgets scopes and returns the ones that were present.
func (s *Session) RemoveScopes(scopes ...events.Scope) []events.Scope {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := make([]events.Scope, 0, len(scopes))
	for _, scope := range scopes {
		if _, ok := s.scopes[scope]; !ok {
			continue
		}
		delete(s.scopes, scope)
		removed = append(removed, scope)
	}
	return removed
}

func (s *Session) Scopes() []events.Scope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scopes := make([]events.Scope, 0, len(s.scopes))
	for scope := range s.scopes {
		scopes = append(scopes, scope)
	}
	slices.Sort(scopes)
	return scopes
}

// Info is a read-only snapshot of a session for listings.
type Info struct {
	ID       string         `json:"id"`
	UserID   string         `json:"userId"`
	Role     domain.Role    `json:"role"`
	UserName string         `json:"userName,omitempty"`
	JoinedAt time.Time      `json:"joinedAt"`
	LastSeen time.Time      `json:"lastSeen"`
	Scopes   []events.Scope `json:"scopes"`
	Pending  int            `json:"pending"`
}

func (s *Session) Info() Info {
	return Info{
		ID:       s.ID,
		UserID:   s.Identity.UserID,
		Role:     s.Identity.Role,
		UserName: s.UserName,
		JoinedAt: s.JoinedAt,
		LastSeen: s.LastSeen(),
		Scopes:   s.Scopes(),
		Pending:  s.Outbox.Len(),
	}
}
