package repository

import (
	"context"
	"fmt"

	"media-watchlist/internal/data/entity"
	"media-watchlist/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	// ResolveID runs inside the caller's transaction: it takes a row lock on
	// the user matching ProfileName, inserting the row when absent.
	ResolveID(ctx context.Context, q database.Querier, user *entity.User) (int64, error)

	Create(ctx context.Context, user *entity.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) ResolveID(ctx context.Context, q database.Querier, user *entity.User) (int64, error) {
	id, err := resolveOrCreate(ctx, q,
		fmt.Sprintf("User:%s", user.ProfileName),
		`SELECT "UserId" FROM "User" WHERE "ProfileName" = $1 FOR UPDATE`,
		`INSERT INTO "User" ("FirstName", "LastName", "ProfileName") VALUES ($1, $2, $3) RETURNING "UserId"`,
		[]any{user.ProfileName},
		[]any{user.FirstName, user.LastName, user.ProfileName},
	)
	if err != nil {
		r.log.Error("Failed to resolve user",
			zap.Error(err),
			zap.String("profile_name", user.ProfileName),
		)
		return 0, fmt.Errorf("resolve user %s: %w", user.ProfileName, err)
	}

	return id, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO "User" ("FirstName", "LastName", "ProfileName")
		VALUES ($1, $2, $3)
		RETURNING "UserId"
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.ProfileName,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("profile_name", user.ProfileName),
		)
		return 0, fmt.Errorf("create user %s: %w", user.ProfileName, err)
	}

	return id, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT "UserId", "FirstName", "LastName", "ProfileName"
		FROM "User"
		WHERE "UserId" = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.ProfileName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT "UserId", "FirstName", "LastName", "ProfileName"
		FROM "User"
		ORDER BY "UserId"
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.UserID,
			&user.FirstName,
			&user.LastName,
			&user.ProfileName,
		)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM "User"`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE "User"
		SET "FirstName" = $2, "LastName" = $3, "ProfileName" = $4
		WHERE "UserId" = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.UserID,
		user.FirstName,
		user.LastName,
		user.ProfileName,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", user.UserID),
		)
		return fmt.Errorf("update user %d: %w", user.UserID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", user.UserID, ErrNotFound)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM "User" WHERE "UserId" = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	r.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
