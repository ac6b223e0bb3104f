package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userbook-backend/internal/domains/authorship"
)

func newTestRepo(t *testing.T) (authorship.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresRepository(db), mock
}

func TestAuthorsOfBook(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT user_id FROM user_book WHERE book_id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)).AddRow(int64(3)))

	ids, err := repo.AuthorsOfBook(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorsOfBook_UnknownBookIsEmptyList(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT user_id FROM user_book WHERE book_id").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	ids, err := repo.AuthorsOfBook(context.Background(), 999)
	require.NoError(t, err)
	// Empty, never nil: the handler serializes this directly as [].
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestBooksOfUser(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT book_id FROM user_book WHERE user_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"book_id"}).AddRow(int64(2)).AddRow(int64(5)))

	ids, err := repo.BooksOfUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5}, ids)
}

func TestBooksOfUser_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT book_id FROM user_book WHERE user_id").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrConnDone)

	ids, err := repo.BooksOfUser(context.Background(), 1)
	assert.Nil(t, ids)
	assert.True(t, errors.Is(err, sql.ErrConnDone))
}
