package domain

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
	RoleHunter Role = "HUNTER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient || r == RoleHunter
}

// Identity is the verified caller attached to every command by the transport layer.
type Identity struct {
	UserID string
	Role   Role
}

// SystemIdentity is used by scheduled jobs acting on behalf of the platform.
var SystemIdentity = Identity{UserID: "system", Role: RoleAdmin}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
