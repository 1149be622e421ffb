package entity

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleDev   UserRole = "dev"
)

// User is the persisted account record. HashedPass never leaves the service.
type User struct {
	ID         string     `bson:"_id"`
	FirstName  string     `bson:"first_name"`
	LastName   string     `bson:"last_name"`
	Role       UserRole   `bson:"role"`
	IsActive   bool       `bson:"is_active"`
	CreatedAt  time.Time  `bson:"created_at"`
	LastLogin  *time.Time `bson:"last_login"`
	HashedPass string     `bson:"hashed_pass"`
}

// UserUpdate describes a partial update. Nil fields are left untouched,
// which is what keeps PUT /users and the admin path merge-only.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Password  *string
	Role      *string
}

// IsAdmin reports whether the user passes the admin gate
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
