package authorship

import "context"

// Repository reads the user_book association. The association is seeded by
// migrations and read-only through this service; rows disappear only via the
// cascade when a user or book is deleted.
type Repository interface {
	// AuthorsOfBook returns the ids of users who authored the book. An
	// unknown book id yields an empty set, not an error.
	AuthorsOfBook(ctx context.Context, bookID int64) ([]int64, error)

	// BooksOfUser returns the ids of books the user authored. An unknown
	// user id yields an empty set, not an error.
	BooksOfUser(ctx context.Context, userID int64) ([]int64, error)
}
