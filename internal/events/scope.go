package events

import (
	"fmt"
	"strings"
)

// Scope names a set of sessions interested in the same events.
type Scope string

// ScopeAll is the organization-wide scope every bounty event is delivered to.
const ScopeAll Scope = "all"

const (
	bountyPrefix = "bounty:"
	userPrefix   = "user:"
)

func BountyScope(bountyID string) Scope {
	return Scope(bountyPrefix + bountyID)
}

func UserScope(userID string) Scope {
	return Scope(userPrefix + userID)
}

func ParseScope(raw string) (Scope, error) {
	switch {
	case raw == string(ScopeAll):
		return ScopeAll, nil
	case strings.HasPrefix(raw, bountyPrefix) && len(raw) > len(bountyPrefix):
		return Scope(raw), nil
	case strings.HasPrefix(raw, userPrefix) && len(raw) > len(userPrefix):
		return Scope(raw), nil
	}
	return "", fmt.Errorf("unknown scope %q", raw)
}

func (s Scope) IsUser() bool {
	return strings.HasPrefix(string(s), userPrefix)
}
