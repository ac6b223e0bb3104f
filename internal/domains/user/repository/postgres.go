package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"userbook-backend/internal/domains/user"
)

// dbtx is the slice of database/sql shared by *sql.DB and *sql.Tx, so the
// same repository code serves both pooled and transactional calls.
type dbtx interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = "id, first_name, last_name, gender"

type postgresRepository struct {
	db dbtx
}

// NewPostgresRepository constructs a user.Repository bound to the shared pool.
func NewPostgresRepository(db *sql.DB) user.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx *sql.Tx) user.Repository {
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	var u user.User
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, firstName, lastName string) (*user.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE first_name = $1 AND last_name = $2", userColumns)

	var u user.User
	err := r.db.QueryRowContext(ctx, query, firstName, lastName).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by name: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	query := `
		INSERT INTO users (first_name, last_name, gender)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.Gender).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.UniqueViolation {
			return 0, user.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, fields user.UpdateFields) error {
	builder := psql.Update("users").Where(sq.Eq{"id": id})

	if fields.FirstName != nil {
		builder = builder.Set("first_name", *fields.FirstName)
	}
	if fields.LastName != nil {
		builder = builder.Set("last_name", *fields.LastName)
	}
	if fields.Gender != nil {
		builder = builder.Set("gender", *fields.Gender)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, q user.ListUsersQuery) ([]user.User, int64, error) {
	countBuilder := psql.Select("COUNT(*)").From("users")
	listBuilder := psql.Select(userColumns).From("users")

	if q.Gender != "" {
		filter := sq.Eq{"gender": q.Gender}
		countBuilder = countBuilder.Where(filter)
		listBuilder = listBuilder.Where(filter)
	}

	// Total count covers the filtered set before pagination.
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	listQuery, listArgs, err := listBuilder.
		OrderBy("id").
		Offset(uint64(q.Offset())).
		Limit(uint64(q.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Gender); err != nil {
			return nil, 0, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, total, nil
}

// pgErrorCode extracts the PostgreSQL error code, if any.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
