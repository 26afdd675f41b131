package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"authors-backend/internal/domains/authorinfo"
	"authors-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) authorinfo.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23502":
			return fmt.Errorf("%w: %s", authorinfo.ErrConstraintViolation, pgErr.Message)
		}
	}
	return err
}

func (r *postgresRepository) Create(ctx context.Context, i *authorinfo.AuthorInfo) (*authorinfo.AuthorInfo, error) {
	query := `
        INSERT INTO info_autores (role, bio)
        VALUES ($1, $2)
        RETURNING id, role, bio
    `

	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*authorinfo.AuthorInfo, error) {
		var out authorinfo.AuthorInfo
		err := tx.QueryRow(ctx, query, i.Role, i.Bio).Scan(&out.ID, &out.Role, &out.Bio)
		if err != nil {
			return nil, constraintError(err)
		}
		return &out, nil
	})
	if err != nil {
		if errors.Is(err, authorinfo.ErrConstraintViolation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create author info: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, i *authorinfo.AuthorInfo) (*authorinfo.AuthorInfo, error) {
	query := `
        UPDATE info_autores
        SET role = $1, bio = $2
        WHERE id = $3
        RETURNING id, role, bio
    `

	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*authorinfo.AuthorInfo, error) {
		var out authorinfo.AuthorInfo
		err := tx.QueryRow(ctx, query, i.Role, i.Bio, i.ID).Scan(&out.ID, &out.Role, &out.Bio)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, authorinfo.ErrAuthorInfoNotFound
			}
			return nil, constraintError(err)
		}
		return &out, nil
	})
	if err != nil {
		if errors.Is(err, authorinfo.ErrAuthorInfoNotFound) || errors.Is(err, authorinfo.ErrConstraintViolation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update author info: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM info_autores WHERE id = $1`

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return authorinfo.ErrAuthorInfoNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, authorinfo.ErrAuthorInfoNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete author info: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*authorinfo.AuthorInfo, error) {
	query := `
        SELECT id, role, bio
        FROM info_autores
        WHERE id = $1
    `

	var i authorinfo.AuthorInfo
	err := r.pool.QueryRow(ctx, query, id).Scan(&i.ID, &i.Role, &i.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author info by id: %w", err)
	}

	return &i, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]authorinfo.AuthorInfo, error) {
	query := `
        SELECT id, role, bio
        FROM info_autores
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query author infos: %w", err)
	}
	defer rows.Close()

	return scanInfos(rows)
}

func (r *postgresRepository) FindByTerm(ctx context.Context, term string) ([]authorinfo.AuthorInfo, error) {
	query := `
        SELECT id, role, bio
        FROM info_autores
        WHERE role LIKE '%' || $1 || '%'
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search author infos: %w", err)
	}
	defer rows.Close()

	return scanInfos(rows)
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(1) FROM info_autores`

	var total int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count author infos: %w", err)
	}

	return total, nil
}

func scanInfos(rows pgx.Rows) ([]authorinfo.AuthorInfo, error) {
	var infos []authorinfo.AuthorInfo
	for rows.Next() {
		var i authorinfo.AuthorInfo
		if err := rows.Scan(&i.ID, &i.Role, &i.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan author info: %w", err)
		}
		infos = append(infos, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author infos: %w", err)
	}

	return infos, nil
}
