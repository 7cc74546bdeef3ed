package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/okatkov/lookbook/internal/common"
	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/server/models"
)

// uniqueViolation is the Postgres error code for a unique-constraint hit.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (uid, name, email, password_hash, api_key, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.UID, user.Name, user.Email, user.PasswordHash, user.APIKey, user.Status).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, uid, name, email, password_hash, api_key, status, birthday, location, about, updated_at, created_at
		 FROM users
		 WHERE email = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	query :=
		`SELECT id, uid, name, email, password_hash, api_key, status, birthday, location, about, updated_at, created_at
		 FROM users
		 WHERE uid = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, uid))
}

func (r *PostgresRepository) GetUIDByAPIKey(ctx context.Context, apiKey string) (string, error) {
	query :=
		`SELECT uid FROM users
		 WHERE api_key = $1
		 `

	var uid string
	err := r.db.QueryRowContext(ctx, query, apiKey).Scan(&uid)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return uid, nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.UID, &user.Name, &user.Email, &user.PasswordHash,
		&user.APIKey, &user.Status, &user.Birthday, &user.Location, &user.About,
		&user.UpdatedAt, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
