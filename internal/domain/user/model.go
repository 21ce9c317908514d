package user

import (
	"errors"
	"time"
)

// Role is a user's fixed role. Roles never change after creation; there is
// no role-change operation anywhere in the API.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleNurse:
		return true
	}
	return false
}

var (
	ErrNotFound           = errors.New("user not found")
	ErrConflict           = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// User maps to the users table. Password holds the bcrypt hash and is never
// serialized into a response; handlers return Sanitized copies.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	Password       string    `db:"password" json:"-"`
	Email          string    `db:"email" json:"email"`
	FullName       string    `db:"full_name" json:"fullName"`
	Role           Role      `db:"role" json:"role"`
	Specialization *string   `db:"specialization" json:"specialization,omitempty"`
	ContactNumber  *string   `db:"contact_number" json:"contactNumber,omitempty"`
	Address        *string   `db:"address" json:"address,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// Sanitized returns a copy safe for responses, with the password cleared.
func (u *User) Sanitized() *User {
	out := *u
	out.Password = ""
	return &out
}

// Patch carries a partial update. Nil fields are preserved; non-nil fields
// overwrite. Username, password and role are not patchable.
type Patch struct {
	Email          *string `json:"email,omitempty"`
	FullName       *string `json:"fullName,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	ContactNumber  *string `json:"contactNumber,omitempty"`
	Address        *string `json:"address,omitempty"`
}
