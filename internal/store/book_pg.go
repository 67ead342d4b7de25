package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"

	"lms/internal/entity"
	"lms/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = "id, isbn, title, author, genre, published_year, copies, created_at, updated_at"

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

// pg unique_violation
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Genre, &b.PublishedYear, &b.Copies, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *BookPG) Create(ctx context.Context, book *entity.Book) error {
	const query = `
	INSERT INTO books (id, isbn, title, author, genre, published_year, copies)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		book.ISBN, book.Title, book.Author, book.Genre, book.PublishedYear, book.Copies,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	const query = `
	SELECT ` + bookColumns + `
	FROM books
	WHERE id = $1
	LIMIT 1
	`
	book, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return book, nil
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	const query = `
	SELECT ` + bookColumns + `
	FROM books
	ORDER BY title
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookPG) Update(ctx context.Context, id string, book *entity.Book) error {
	const query = `
	UPDATE books
	SET isbn = $2, title = $3, author = $4, genre = $5, published_year = $6, copies = $7, updated_at = NOW()
	WHERE id = $1
	RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		id, book.ISBN, book.Title, book.Author, book.Genre, book.PublishedYear, book.Copies,
	).Scan(&book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrNotFound
		}
		if isUniqueViolation(err) {
			return usecase.ErrAlreadyExists
		}
		return err
	}
	book.ID = id
	return nil
}

// Delete removes the book only. Historical borrow records keep their
// book id; there is no cascade.
func (r *BookPG) Delete(ctx context.Context, id string) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *BookPG) Search(ctx context.Context, query string) ([]entity.Book, error) {
	const searchSQL = `
	SELECT ` + bookColumns + `
	FROM books
	WHERE title ILIKE '%' || $1 || '%'
	   OR author ILIKE '%' || $1 || '%'
	   OR isbn ILIKE '%' || $1 || '%'
	ORDER BY title
	`
	rows, err := r.db.Query(ctx, searchSQL, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// RecommendFor matches the user's favorite genres or authors and skips
// every book in the user's borrow history, active or returned. ORDER BY
// id keeps the result stable across calls.
func (r *BookPG) RecommendFor(ctx context.Context, user entity.User, limit int) ([]entity.Book, error) {
	if limit <= 0 {
		limit = usecase.DefaultRecommendationLimit
	}
	const recommendSQL = `
	SELECT ` + bookColumns + `
	FROM books
	WHERE (genre = ANY($1) OR author = ANY($2))
	  AND id NOT IN (SELECT book_id FROM borrow_records WHERE user_id = $3)
	ORDER BY id
	LIMIT $4
	`
	rows, err := r.db.Query(ctx, recommendSQL, user.FavoriteGenres, user.FavoriteAuthors, user.ID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
