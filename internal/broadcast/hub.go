// Package broadcast fans domain events out to the sessions subscribed to their scopes.
package broadcast

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/events"
	"github.com/GlebRadaev/bountyhub/internal/metrics"
	"github.com/GlebRadaev/bountyhub/internal/session"
)

type Hub struct {
	// publishMu orders sequence numbers with outbox pushes.
	publishMu sync.Mutex
	seq       uint64

	mu    sync.RWMutex
	index map[events.Scope]map[string]*session.Session

	now func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		index: make(map[events.Scope]map[string]*session.Session),
		now:   time.Now,
	}
}

// Attach subscribes a freshly registered session to its default scopes and any extra ones.
func (h *Hub) Attach(s *session.Session, extra ...events.Scope) {
	h.Subscribe(s, append(session.DefaultScopes(s.Identity), extra...)...)
}

// Subscribe indexes s under scopes. A session whose outbox is already closed has been or is
// being detached, so its entries are taken back out.
func (h *Hub) Subscribe(s *session.Session, scopes ...events.Scope) {
	added := s.AddScopes(scopes...)
	if len(added) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, scope := range added {
		members, ok := h.index[scope]
		if !ok {
			members = make(map[string]*session.Session)
			h.index[scope] = members
		}
		members[s.ID] = s
	}

	select {
	case <-s.Outbox.Done():
		s.RemoveScopes(added...)
		for _, scope := range added {
			h.dropLocked(scope, s.ID)
		}
	default:
	}
}

func (h *Hub) Unsubscribe(s *session.Session, scopes ...events.Scope) {
	removed := s.RemoveScopes(scopes...)
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, scope := range removed {
		h.dropLocked(scope, s.ID)
	}
}

// Detach removes a session from every scope. Used as the registry removal hook.
func (h *Hub) Detach(s *session.Session) {
	h.Unsubscribe(s, s.Scopes()...)
}

func (h *Hub) dropLocked(scope events.Scope, id string) {
	members, ok := h.index[scope]
	if !ok {
		return
	}
	delete(members, id)
	if len(members) == 0 {
		delete(h.index, scope)
	}
}

// Subscribers returns how many sessions are subscribed to scope.
func (h *Hub) Subscribers(scope events.Scope) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.index[scope])
}

// Publish encodes each event once and queues it on every session subscribed to any of its
// scopes. A session subscribed to several matching scopes receives the event once. Publish
// never blocks on a session.
func (h *Hub) Publish(evs ...events.Event) {
	h.publishMu.Lock()
	defer h.publishMu.Unlock()

	for _, ev := range evs {
		h.seq++
		frame, err := events.Encode(ev, h.seq, h.now().UTC())
		if err != nil {
			zap.L().Error("can't encode event", zap.String("kind", string(ev.Kind())), zap.Error(err))
			continue
		}
		metrics.RecordEvent(string(ev.Kind()))

		for _, s := range h.recipients(ev.Scopes()) {
			h.deliver(s, frame)
		}
	}
}

func (h *Hub) recipients(scopes []events.Scope) []*session.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]*session.Session, 0)
	for _, scope := range scopes {
		for id, s := range h.index[scope] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

func (h *Hub) deliver(s *session.Session, frame []byte) {
	switch s.Outbox.Push(frame) {
	case session.Queued:
		metrics.RecordFrameQueued()
	case session.QueuedDroppedOldest:
		metrics.RecordFrameQueued()
		metrics.RecordFrameDropped("drop_oldest")
		zap.L().Debug("dropped oldest frame", zap.String("session_id", s.ID))
	case session.Overflowed:
		metrics.RecordFrameDropped("disconnect")
		zap.L().Warn("session outbox overflowed, disconnecting", zap.String("session_id", s.ID))
	case session.Closed:
		metrics.RecordFrameDropped("closed")
	}
}
