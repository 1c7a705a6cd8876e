package model

import "time"

// User is an account that owns appointment records.  Every
// appointment belongs to exactly one user and all reads and
// mutations are scoped by that ownership.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique login identifier, stored lower-cased.
//  PasswordHash – bcrypt hash of the password.
//  Role         – account role; currently always OWNER.
//  IsActive     – soft enable/disable flag.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type User struct {
	ID           uint64    `json:"id"`    // users.id
	Email        string    `json:"email"` // users.email
	PasswordHash string    `json:"-"`     // users.password_hash (never serialized)
	Role         string    `json:"role"`  // users.role
	IsActive     bool      `json:"-"`     // users.is_active
	CreatedAt    time.Time `json:"-"`     // users.created_at
	UpdatedAt    time.Time `json:"-"`     // users.updated_at
}
