package authorship

import "context"

// Service exposes the two symmetric association lookups. No existence check
// is performed on the key: callers re-fetch counterpart records if they need
// more than ids.
type Service interface {
	AuthorsOfBook(ctx context.Context, bookID int64) ([]int64, error)
	BooksOfUser(ctx context.Context, userID int64) ([]int64, error)
}
