package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"authors-backend/internal/domains/author"
	"authors-backend/pkg/database"
)

// postgresRepository implements author.Repository on the autores table.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// constraintError translates unique (23505) and not-null (23502)
// violations into the domain sentinel; anything else passes through.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23502":
			return fmt.Errorf("%w: %s", author.ErrConstraintViolation, pgErr.Message)
		}
	}
	return err
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO autores (name, surname)
        VALUES ($1, $2)
        RETURNING id, name, surname
    `

	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*author.Author, error) {
		var out author.Author
		err := tx.QueryRow(ctx, query, a.Name, a.Surname).Scan(
			&out.ID,
			&out.Name,
			&out.Surname,
		)
		if err != nil {
			return nil, constraintError(err)
		}
		return &out, nil
	})
	if err != nil {
		if errors.Is(err, author.ErrConstraintViolation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	// The WHERE clause makes a missing id a no-row result instead of
	// an upsert; it is surfaced as ErrAuthorNotFound.
	query := `
        UPDATE autores
        SET name = $1, surname = $2
        WHERE id = $3
        RETURNING id, name, surname
    `

	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*author.Author, error) {
		var out author.Author
		err := tx.QueryRow(ctx, query, a.Name, a.Surname, a.ID).Scan(
			&out.ID,
			&out.Name,
			&out.Surname,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, author.ErrAuthorNotFound
			}
			return nil, constraintError(err)
		}
		return &out, nil
	})
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) || errors.Is(err, author.ErrConstraintViolation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM autores WHERE id = $1`

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return author.ErrAuthorNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `
        SELECT id, name, surname
        FROM autores
        WHERE id = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Surname,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A missing id yields no record, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, name, surname
        FROM autores
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	return scanAuthors(rows)
}

func (r *postgresRepository) FindByTerm(ctx context.Context, term string) ([]author.Author, error) {
	// Case-respecting substring match on either column. The empty term
	// produces the pattern '%%', which matches every row.
	query := `
        SELECT id, name, surname
        FROM autores
        WHERE name LIKE '%' || $1 || '%' OR surname LIKE '%' || $1 || '%'
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search authors: %w", err)
	}
	defer rows.Close()

	return scanAuthors(rows)
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(1) FROM autores`

	var total int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return total, nil
}

func scanAuthors(rows pgx.Rows) ([]author.Author, error) {
	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Surname); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}
