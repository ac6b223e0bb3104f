package user

import (
	"context"
	"database/sql"
)

// Repository defines data access for the users table.
//
// Methods run against whatever handle the repository is bound to — the shared
// pool by default, or a transaction via WithTx. Check-then-act sequences
// (conflict probe + insert, existence probe + update/delete) must run through
// a single transaction so the probe and the mutation see the same snapshot.
type Repository interface {
	// WithTx returns a copy of the repository bound to tx.
	WithTx(tx *sql.Tx) Repository

	// FindByID returns at most one row by primary key.
	// Errors: ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByName does an exact, case-sensitive match on both name fields.
	// Callers must normalize first; no normalization happens here.
	// Errors: ErrUserNotFound.
	FindByName(ctx context.Context, firstName, lastName string) (*User, error)

	// Create inserts a single row and returns the assigned id.
	Create(ctx context.Context, u *User) (int64, error)

	// Update applies only the non-nil fields. Zero rows affected (unknown id)
	// is silent; callers pre-check existence.
	Update(ctx context.Context, id int64, fields UpdateFields) error

	// Delete removes the row. Zero rows affected is silent; callers pre-check
	// existence.
	Delete(ctx context.Context, id int64) error

	// List returns one page of users plus the total count of rows matching
	// the filter before pagination.
	List(ctx context.Context, q ListUsersQuery) ([]User, int64, error)
}
