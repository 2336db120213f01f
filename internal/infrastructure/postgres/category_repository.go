package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogapi/internal/domain/apperr"
	"blogapi/internal/domain/entity"
	"blogapi/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, slug
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c := &entity.Category{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, slug
		FROM categories
		WHERE id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("category")
		}
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id
	`, c.Name, c.Slug)
	if err := row.Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("slug")
		}
		return err
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET name = $1, slug = $2
		WHERE id = $3
	`, c.Name, c.Slug, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("slug")
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.NotFound("category")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM categories
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.NotFound("category")
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
