package repository

import (
	"context"
	"database/sql"
	"fmt"

	"userbook-backend/internal/domains/authorship"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) authorship.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) AuthorsOfBook(ctx context.Context, bookID int64) ([]int64, error) {
	return r.queryIDs(ctx,
		"SELECT user_id FROM user_book WHERE book_id = $1 ORDER BY user_id", bookID)
}

func (r *postgresRepository) BooksOfUser(ctx context.Context, userID int64) ([]int64, error) {
	return r.queryIDs(ctx,
		"SELECT book_id FROM user_book WHERE user_id = $1 ORDER BY book_id", userID)
}

func (r *postgresRepository) queryIDs(ctx context.Context, query string, key int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("query association: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan association row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate association rows: %w", err)
	}

	return ids, nil
}
