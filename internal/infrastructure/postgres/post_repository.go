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

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postListQuery = `
	SELECT p.id, p.title, p.slug, p.last_update_date,
	       u.id, u.name, u.email,
	       c.id, c.name, c.slug
	FROM posts p
	JOIN users u ON u.id = p.author_id
	JOIN categories c ON c.id = p.category_id
`

func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]entity.Post, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, postListQuery+`
		ORDER BY p.last_update_date DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanPostList(rows)
	return posts, total, err
}

func (r *PostRepository) ListByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]entity.Post, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE c.slug = $1
	`, categorySlug).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, postListQuery+`
		WHERE c.slug = $1
		ORDER BY p.last_update_date DESC
		OFFSET $2 LIMIT $3
	`, categorySlug, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanPostList(rows)
	return posts, total, err
}

func scanPostList(rows pgx.Rows) ([]entity.Post, error) {
	posts := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		var author entity.User
		var category entity.Category
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.LastUpdateDate,
			&author.ID, &author.Name, &author.Email,
			&category.ID, &category.Name, &category.Slug); err != nil {
			return nil, err
		}
		p.Author = &author
		p.Category = &category
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}
	author := &entity.User{}
	category := &entity.Category{}
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.title, p.slug, p.body, p.last_update_date,
		       u.id, u.name, u.email, u.image, u.slug,
		       c.id, c.name, c.slug
		FROM posts p
		JOIN users u ON u.id = p.author_id
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.LastUpdateDate,
		&author.ID, &author.Name, &author.Email, &author.Image, &author.Slug,
		&category.ID, &category.Name, &category.Slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("post")
		}
		return nil, err
	}

	roles, err := r.authorRoles(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	author.Roles = roles
	p.Author = author
	p.Category = category
	return p, nil
}

func (r *PostRepository) authorRoles(ctx context.Context, userID int64) ([]entity.Role, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.name, r.slug
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Slug); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// ListAll streams every post with its body, used by the reindex command.
func (r *PostRepository) ListAll(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.title, p.slug, p.body, p.last_update_date,
		       u.id, u.name, u.email,
		       c.id, c.name, c.slug
		FROM posts p
		JOIN users u ON u.id = p.author_id
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		var author entity.User
		var category entity.Category
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.LastUpdateDate,
			&author.ID, &author.Name, &author.Email,
			&category.ID, &category.Name, &category.Slug); err != nil {
			return nil, err
		}
		p.Author = &author
		p.Category = &category
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)
