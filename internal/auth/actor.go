package auth

// Role of an authenticated (or anonymous) caller.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleBarber    Role = "barbeiro"
	RoleClient    Role = "cliente"
	RoleAnonymous Role = "anonymous"
)

// Actor identifies who is performing an operation. Every use case takes the
// actor explicitly; role-varying behavior is parameterized by this value, not
// by separate code paths per role.
type Actor struct {
	TenantID uint
	ID       uint
	Role     Role
}

func (a Actor) IsAdmin() bool  { return a.Role == RoleAdmin }
func (a Actor) IsBarber() bool { return a.Role == RoleBarber }
func (a Actor) IsClient() bool { return a.Role == RoleClient }
