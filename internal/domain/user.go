package domain

import "time"

// UserType distinguishes regular users from administrators.
type UserType string

const (
	UserTypeUser  UserType = "user"
	UserTypeAdmin UserType = "admin"
)

// IsValid reports whether t is a known user type.
func (t UserType) IsValid() bool {
	return t == UserTypeUser || t == UserTypeAdmin
}

func (t UserType) String() string { return string(t) }

// User represents an authenticated application user.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	UserType     UserType
	CreatedAt    time.Time
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool { return u.UserType == UserTypeAdmin }

// PublicProfile is the subset of User safe to expose on public surfaces
// (share views, admin listings).
type PublicProfile struct {
	ID       int64
	Username string
}

// Public returns the user's public profile.
func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Username: u.Username}
}
