package model

import "time"

// Role is the access level of a signed-in user. Services treat it as an
// opaque filter string; enforcement happens only at the route middleware.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleObserver    Role = "observer"
	RoleTeacher     Role = "teacher"
)

// User is an account in the users collection
type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Name         string     `json:"name" bson:"name" validate:"required,max=100"`
	Email        string     `json:"email" bson:"email" validate:"required,email"`
	Role         Role       `json:"role" bson:"role"`
	Department   string     `json:"department" bson:"department" validate:"required"`
	Permissions  []string   `json:"permissions" bson:"permissions"`
	PasswordHash []byte     `json:"-" bson:"passwordHash"`
	LastLogin    *time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}
