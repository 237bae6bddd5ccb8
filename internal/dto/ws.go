package dto

// Client frames accepted on the WebSocket connection.
const (
	WSJoin        = "join"
	WSSubscribe   = "subscribe"
	WSUnsubscribe = "unsubscribe"
	WSPing        = "ping"
)

type WSClientMessage struct {
	Type     string   `json:"type"`
	UserName string   `json:"userName,omitempty"`
	Scopes   []string `json:"scopes,omitempty"`
}

type WSServerMessage struct {
	Type      string   `json:"type"`
	SessionID string   `json:"sessionId,omitempty"`
	Scopes    []string `json:"scopes,omitempty"`
	Error     string   `json:"error,omitempty"`
}
