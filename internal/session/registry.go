// Package session keeps the live client connections of this process.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
	"github.com/GlebRadaev/bountyhub/internal/metrics"
)

type Config struct {
	QueueSize int
	Overflow  OverflowPolicy
	MaxIdle   time.Duration
}

type Registry struct {
	cfg Config

	mu       sync.RWMutex
	sessions map[string]*Session
	onRemove []func(*Session)

	now func() time.Time
}

func NewRegistry(cfg Config) *Registry {
	if cfg.Overflow == "" {
		cfg.Overflow = DropOldest
	}
	return &Registry{
		cfg:      cfg,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// OnRemove registers a hook run once for every session leaving the registry.
func (r *Registry) OnRemove(fn func(*Session)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onRemove = append(r.onRemove, fn)
}

// Register creates a session for a verified identity. The session starts subscribed to the
// organization scope and to the user's own scope.
func (r *Registry) Register(identity domain.Identity, userName string) *Session {
	now := r.now().UTC()
	s := &Session{
		ID:       uuid.NewString(),
		Identity: identity,
		UserName: userName,
		JoinedAt: now,
		Outbox:   NewOutbox(r.cfg.QueueSize, r.cfg.Overflow),
		scopes:   make(map[events.Scope]struct{}),
	}
	s.Touch(now)

	r.mu.Lock()
	r.sessions[s.ID] = s
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.SetActiveSessions(n)
	zap.L().Info("session joined",
		zap.String("session_id", s.ID),
		zap.String("user_id", identity.UserID),
		zap.String("role", string(identity.Role)))
	return s
}

// DefaultScopes are the scopes a new session subscribes to.
func DefaultScopes(identity domain.Identity) []events.Scope {
	return []events.Scope{events.ScopeAll, events.UserScope(identity.UserID)}
}

// Remove drops a session and closes its outbox. Removing an unknown id is a no-op.
func (r *Registry) Remove(id, reason string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	n := len(r.sessions)
	hooks := r.onRemove
	r.mu.Unlock()
	if !ok {
		return
	}

	s.Outbox.Close(reason)
	for _, fn := range hooks {
		fn(s)
	}
	metrics.SetActiveSessions(n)
	zap.L().Info("session left", zap.String("session_id", id), zap.String("reason", reason))
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Touch(id string) {
	if s, ok := r.Get(id); ok {
		s.Touch(r.now())
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) List() []Info {
	r.mu.RLock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	infos := make([]Info, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, s.Info())
	}
	return infos
}

// Reap removes sessions not seen for longer than maxIdle and returns how many were removed.
func (r *Registry) Reap(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	cutoff := r.now().Add(-maxIdle)

	r.mu.RLock()
	idle := make([]string, 0)
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			idle = append(idle, id)
		}
	}
	r.mu.RUnlock()

	for _, id := range idle {
		r.Remove(id, "idle timeout")
	}
	if len(idle) > 0 {
		metrics.RecordReaped(len(idle))
	}
	return len(idle)
}

// CloseAll removes every session, used on shutdown.
func (r *Registry) CloseAll(reason string) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	for _, id := range ids {
		r.Remove(id, reason)
	}
}

// ScheduleReaper runs Reap on the scheduler every interval.
func (r *Registry) ScheduleReaper(ctx context.Context, scheduler gocron.Scheduler, interval time.Duration) error {
	if r.cfg.MaxIdle <= 0 {
		return nil
	}
	_, err := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			if n := r.Reap(r.cfg.MaxIdle); n > 0 {
				zap.L().Info("reaped idle sessions", zap.Int("count", n))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		zap.L().Error("can't schedule session reaper", zap.Error(err))
	}
	return err
}
