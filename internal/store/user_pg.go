package store

import (
	"context"
	"errors"

	"lms/internal/entity"
	"lms/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = "id, name, email, password, favorite_genres, favorite_authors, created_at, updated_at"

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func (r *UserPG) Create(ctx context.Context, user *entity.User) error {
	const query = `
	INSERT INTO users (id, name, email, password)
	VALUES (gen_random_uuid(), $1, $2, $3)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.Password).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserPG) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users
	WHERE id = $1
	LIMIT 1
	`
	return r.getOne(ctx, query, id)
}

func (r *UserPG) getOne(ctx context.Context, query string, arg any) (entity.User, error) {
	var user entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.FavoriteGenres, &user.FavoriteAuthors,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

func (r *UserPG) UpdatePreferences(ctx context.Context, userID string, genres, authors []string) error {
	const query = `
	UPDATE users
	SET favorite_genres = $2, favorite_authors = $3, updated_at = NOW()
	WHERE id = $1
	`
	commandTag, err := r.db.Exec(ctx, query, userID, genres, authors)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
