package model

// Role is resolved once per request from the bearer token.
type Role int

const (
	RoleAnonymous Role = iota
	RoleStudent
	RoleOwner
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleOwner:
		return "owner"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Caller identifies who is making the request. OwnerID and StudentID are the
// profile ids used for ownership checks; zero when the caller has no such profile.
type Caller struct {
	UserID    int64
	OwnerID   int64
	StudentID int64
	Role      Role
}

var Anonymous = Caller{Role: RoleAnonymous}

func (c Caller) Authenticated() bool { return c.Role != RoleAnonymous }

func (c Caller) IsOwner() bool { return c.Role == RoleOwner && c.OwnerID != 0 }

func (c Caller) IsStudent() bool { return c.Role == RoleStudent && c.StudentID != 0 }
