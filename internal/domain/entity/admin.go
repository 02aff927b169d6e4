package entity

import (
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleSuperAdmin = "super-admin"
)

// Admin is a back-office account. Passwords are stored as-is, matching the
// site this service backs; only the super-admin is protected from deletion.
type Admin struct {
	ID        int64     `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Password  string    `json:"-" firestore:"password"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	Role      string    `json:"role" firestore:"role"`
}
