package application

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"blogapi/internal/domain/apperr"
	"blogapi/internal/domain/entity"
)

// In-memory repository doubles. They mirror the error contract of the
// postgres implementations so services can be exercised without a database.

type memUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return apperr.Conflict("email")
	}
	r.seq++
	u.ID = r.seq
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) UpdateImage(_ context.Context, email, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return apperr.NotFound("user")
	}
	u.Image = imageURL
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// erroringUserRepo simulates a broken store: every operation fails with
// the configured error.
type erroringUserRepo struct{ err error }

func (r erroringUserRepo) Create(context.Context, *entity.User) error { return r.err }
func (r erroringUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, r.err
}
func (r erroringUserRepo) UpdateImage(context.Context, string, string) error { return r.err }

type memCategoryRepo struct {
	mu   sync.Mutex
	seq  int64
	cats map[int64]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{cats: make(map[int64]*entity.Category)}
}

func (r *memCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Category, 0, len(r.cats))
	for _, c := range r.cats {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cats[id]
	if !ok {
		return nil, apperr.NotFound("category")
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.cats {
		if existing.Slug == c.Slug {
			return apperr.Conflict("slug")
		}
	}
	r.seq++
	c.ID = r.seq
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cats[c.ID]; !ok {
		return apperr.NotFound("category")
	}
	for _, existing := range r.cats {
		if existing.Slug == c.Slug && existing.ID != c.ID {
			return apperr.Conflict("slug")
		}
	}
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cats[id]; !ok {
		return apperr.NotFound("category")
	}
	delete(r.cats, id)
	return nil
}

type memPostRepo struct {
	posts []entity.Post

	lastOffset int
	lastLimit  int
}

func (r *memPostRepo) sorted(filterSlug string) []entity.Post {
	out := make([]entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if filterSlug != "" && (p.Category == nil || p.Category.Slug != filterSlug) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUpdateDate.After(out[j].LastUpdateDate)
	})
	return out
}

func (r *memPostRepo) page(all []entity.Post, offset, limit int) ([]entity.Post, int64) {
	r.lastOffset, r.lastLimit = offset, limit
	total := int64(len(all))
	if offset >= len(all) {
		return []entity.Post{}, total
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total
}

func (r *memPostRepo) List(_ context.Context, offset, limit int) ([]entity.Post, int64, error) {
	posts, total := r.page(r.sorted(""), offset, limit)
	return posts, total, nil
}

func (r *memPostRepo) ListByCategory(_ context.Context, categorySlug string, offset, limit int) ([]entity.Post, int64, error) {
	posts, total := r.page(r.sorted(categorySlug), offset, limit)
	return posts, total, nil
}

func (r *memPostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID == id {
			cp := r.posts[i]
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("post")
}

func (r *memPostRepo) ListAll(_ context.Context) ([]entity.Post, error) {
	return r.sorted(""), nil
}

type fakePublisher struct {
	mu   sync.Mutex
	jobs []any
	err  error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}

type fakeImageStore struct {
	objectPath  string
	contentType string
	data        []byte
	uploads     int
}

func (s *fakeImageStore) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	s.uploads++
	s.objectPath = objectPath
	s.contentType = contentType
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.data = b
	return "https://storage.example.com/" + objectPath, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
