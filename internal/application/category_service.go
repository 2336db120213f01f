package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"blogapi/internal/domain/apperr"
	"blogapi/internal/domain/entity"
	"blogapi/internal/domain/repository"
	"blogapi/pkg/cache"
	"blogapi/pkg/helpers"
)

// CategoryListKey is the single cache key shared by all readers of the
// category list.
const CategoryListKey = "categories:all"

// CategoryService provides category CRUD with a TTL-cached list.
// Writes invalidate the list cache; out-of-band store mutations stay
// invisible until the TTL elapses.
type CategoryService struct {
	Repo   repository.CategoryRepository
	Cache  cache.Cache
	TTL    time.Duration
	Logger *logrus.Logger

	sf singleflight.Group
}

func NewCategoryService(repo repository.CategoryRepository, c cache.Cache, ttl time.Duration, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Repo: repo, Cache: c, TTL: ttl, Logger: logger}
}

// List returns all categories from the cache, falling back to the store.
// The first caller after expiry pays the store round-trip; concurrent
// first callers are collapsed to one query.
func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return cache.GetOrLoad(ctx, s.Cache, &s.sf, CategoryListKey, s.TTL, func(ctx context.Context) ([]entity.Category, error) {
		return s.Repo.List(ctx)
	})
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name, slug string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	slug = helpers.NormalizeSlug(slug)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if slug == "" {
		return nil, apperr.Validation("slug is required")
	}

	c := &entity.Category{Name: name, Slug: slug}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, name, slug string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	slug = helpers.NormalizeSlug(slug)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if slug == "" {
		return nil, apperr.Validation("slug is required")
	}

	c := &entity.Category{ID: id, Name: name, Slug: slug}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return c, nil
}

// Delete removes the category and returns the deleted entity.
func (s *CategoryService) Delete(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return c, nil
}

func (s *CategoryService) invalidateList(ctx context.Context) {
	if err := s.Cache.Delete(ctx, CategoryListKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("category cache invalidation failed")
	}
}
