package sessions

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/internal/events"
	"github.com/GlebRadaev/bountyhub/internal/session"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/utils"
)

//go:generate mockgen -source=sessions.go -destination=mock_sessions.go -package=sessions

type Registry interface {
	Register(identity domain.Identity, userName string) *session.Session
	Remove(id, reason string)
	Touch(id string)
	List() []session.Info
}

type Broker interface {
	Attach(s *session.Session, extra ...events.Scope)
	Subscribe(s *session.Session, scopes ...events.Scope)
	Unsubscribe(s *session.Session, scopes ...events.Scope)
}

type Config struct {
	JoinTimeout  time.Duration
	WriteTimeout time.Duration
	PingInterval time.Duration
	ReadLimit    int64
}

func DefaultConfig() Config {
	return Config{
		JoinTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		PingInterval: 30 * time.Second,
		ReadLimit:    4096,
	}
}

var (
	errJoinRequired = errors.New("first message must be a join")
	errScopeDenied  = errors.New("scope not permitted")
)

type SessionHandler struct {
	registry Registry
	broker   Broker
	cfg      Config
	upgrader websocket.Upgrader
}

func New(registry Registry, broker Broker, cfg Config) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		broker:   broker,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Upgrades are authenticated by bearer token, never by cookie.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Connect godoc
//
//	@Summary		Real-time event stream
//	@Description	Upgrades to a WebSocket. The first client frame must be {"type":"join","userName":"...","scopes":["bounty:<id>"]}.
//	@Description	Afterwards the client may send subscribe, unsubscribe and ping frames. Every domain event arrives as {"type","seq","at","payload"}.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Param			token	query		string			false	"Bearer token for clients that cannot set headers"
//	@Success		101		{string}	string			"Switching protocols"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/ws [get]
func (h *SessionHandler) Connect(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.cfg.ReadLimit)

	join, scopes, err := h.readJoin(conn, caller)
	if err != nil {
		h.reject(conn, err)
		return
	}

	s := h.registry.Register(caller, join.UserName)
	h.broker.Attach(s, scopes...)
	h.reply(s, dto.WSServerMessage{Type: "joined", SessionID: s.ID, Scopes: scopeStrings(s.Scopes())})

	pongWait := 2 * h.cfg.PingInterval
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		h.registry.Touch(s.ID)
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.writeLoop(conn, s)
	}()

	reason := h.readLoop(conn, s, caller, pongWait)
	h.registry.Remove(s.ID, reason)
	wg.Wait()
}

func (h *SessionHandler) readJoin(conn *websocket.Conn, caller domain.Identity) (dto.WSClientMessage, []events.Scope, error) {
	var msg dto.WSClientMessage
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.JoinTimeout))
	if err := conn.ReadJSON(&msg); err != nil {
		return msg, nil, err
	}
	if msg.Type != dto.WSJoin {
		return msg, nil, errJoinRequired
	}
	scopes, err := parseScopes(caller, msg.Scopes)
	return msg, scopes, err
}

// reject answers a connection that never joined. The session was not registered, so the
// frame is written directly.
func (h *SessionHandler) reject(conn *websocket.Conn, err error) {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return
	}
	zap.L().Info("websocket join rejected", zap.Error(err))
	deadline := time.Now().Add(h.cfg.WriteTimeout)
	_ = conn.SetWriteDeadline(deadline)
	_ = conn.WriteJSON(dto.WSServerMessage{Type: "error", Error: err.Error()})
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, truncate(err.Error())), deadline)
}

func (h *SessionHandler) readLoop(conn *websocket.Conn, s *session.Session, caller domain.Identity, pongWait time.Duration) string {
	for {
		var msg dto.WSClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Info("websocket read failed", zap.String("session_id", s.ID), zap.Error(err))
			}
			return "connection closed"
		}
		h.registry.Touch(s.ID)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		switch msg.Type {
		case dto.WSSubscribe, dto.WSUnsubscribe:
			scopes, err := parseScopes(caller, msg.Scopes)
			if err != nil {
				h.reply(s, dto.WSServerMessage{Type: "error", Error: err.Error()})
				continue
			}
			if msg.Type == dto.WSSubscribe {
				h.broker.Subscribe(s, scopes...)
			} else {
				h.broker.Unsubscribe(s, scopes...)
			}
			h.reply(s, dto.WSServerMessage{Type: "subscriptions", Scopes: scopeStrings(s.Scopes())})
		case dto.WSPing:
			h.reply(s, dto.WSServerMessage{Type: "pong"})
		case dto.WSJoin:
			h.reply(s, dto.WSServerMessage{Type: "error", Error: "already joined"})
		default:
			h.reply(s, dto.WSServerMessage{Type: "error", Error: "unknown message type " + msg.Type})
		}
	}
}

// writeLoop is the only writer of conn once the session is registered.
func (h *SessionHandler) writeLoop(conn *websocket.Conn, s *session.Session) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case <-s.Outbox.Ready():
			for _, frame := range s.Outbox.Drain() {
				_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
					zap.L().Info("websocket write failed", zap.String("session_id", s.ID), zap.Error(err))
					return
				}
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.cfg.WriteTimeout)); err != nil {
				return
			}
		case <-s.Outbox.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, truncate(s.Outbox.Reason())),
				time.Now().Add(h.cfg.WriteTimeout))
			return
		}
	}
}

func (h *SessionHandler) reply(s *session.Session, msg dto.WSServerMessage) {
	frame, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("failed to encode websocket reply", zap.Error(err))
		return
	}
	s.Outbox.Push(frame)
}

// List godoc
//
//	@Summary	Live sessions
//	@Tags		Sessions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		session.Info
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Router		/api/sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())
	if !caller.IsAdmin() {
		utils.RespondWithDomainError(w, domain.ErrForbidden)
		return
	}
	infos := h.registry.List()
	if infos == nil {
		infos = []session.Info{}
	}
	utils.RespondWithJSON(w, http.StatusOK, infos)
}

// parseScopes validates requested scopes. A non-admin may only name its own user scope.
func parseScopes(caller domain.Identity, raw []string) ([]events.Scope, error) {
	scopes := make([]events.Scope, 0, len(raw))
	for _, r := range raw {
		scope, err := events.ParseScope(r)
		if err != nil {
			return nil, err
		}
		if scope.IsUser() && scope != events.UserScope(caller.UserID) && !caller.IsAdmin() {
			return nil, errScopeDenied
		}
		scopes = append(scopes, scope)
	}
	return scopes, nil
}

func scopeStrings(scopes []events.Scope) []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = string(s)
	}
	return out
}

// truncate keeps a close reason within the 123 bytes a close frame allows.
func truncate(reason string) string {
	if len(reason) > 123 {
		return reason[:123]
	}
	return reason
}
