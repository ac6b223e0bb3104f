package user

import "context"

// CreateResult distinguishes a fresh insert from the idempotent
// already-exists outcome, which is a success, not a conflict error.
type CreateResult int

const (
	Created CreateResult = iota
	AlreadyExists
)

// UpdateResult distinguishes a write from the idempotent no-change outcome.
type UpdateResult int

const (
	Updated UpdateResult = iota
	AlreadyUpToDate
)

// Service holds the business rules for the user resource: conflict detection
// on create, idempotence detection on update, and existence pre-checks on
// every mutation.
type Service interface {
	// GetByID fetches a single user.
	// Errors: ErrUserNotFound.
	GetByID(ctx context.Context, id int64) (*User, error)

	// Create inserts req (already validated and normalized) unless a user
	// with the identical name pair exists. The probe and the insert run in
	// one transaction.
	Create(ctx context.Context, req CreateUserRequest) (CreateResult, error)

	// List returns one page plus the pre-pagination total count.
	List(ctx context.Context, q ListUsersQuery) ([]User, int64, error)

	// Update applies the provided fields unless they all match the stored
	// values. Errors: ErrNoFields, ErrUserNotFound.
	Update(ctx context.Context, id int64, req UpdateUserRequest) (UpdateResult, error)

	// Delete removes the user. Association rows cascade at the storage layer.
	// Errors: ErrUserNotFound.
	Delete(ctx context.Context, id int64) error
}
