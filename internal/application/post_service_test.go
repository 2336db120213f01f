package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogapi/internal/domain/apperr"
	"blogapi/internal/domain/entity"
)

func seedPosts(n int) *memPostRepo {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	author := &entity.User{ID: 1, Name: "Ada", Email: "ada@example.com"}
	backend := &entity.Category{ID: 1, Name: "Backend", Slug: "backend"}
	devops := &entity.Category{ID: 2, Name: "DevOps", Slug: "devops"}

	repo := &memPostRepo{}
	for i := 0; i < n; i++ {
		cat := backend
		if i%2 == 1 {
			cat = devops
		}
		repo.posts = append(repo.posts, entity.Post{
			ID:             int64(i + 1),
			Title:          "Post",
			Slug:           "post",
			LastUpdateDate: base.Add(time.Duration(i) * time.Hour),
			Author:         author,
			Category:       cat,
		})
	}
	return repo
}

func TestPostListClampsPaging(t *testing.T) {
	repo := seedPosts(3)
	svc := NewPostService(repo, nil, "", quietLogger())
	ctx := context.Background()

	page, err := svc.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.PageSize != 25 || repo.lastLimit != 25 {
		t.Errorf("zero page size clamped to %d (limit %d), want default 25", page.PageSize, repo.lastLimit)
	}

	page, _ = svc.List(ctx, 0, 1000)
	if page.PageSize != 100 || repo.lastLimit != 100 {
		t.Errorf("oversized page size clamped to %d, want 100", page.PageSize)
	}

	page, _ = svc.List(ctx, -3, 10)
	if page.Page != 0 || repo.lastOffset != 0 {
		t.Errorf("negative page clamped to %d (offset %d), want 0", page.Page, repo.lastOffset)
	}
}

func TestPostListPagesAreDisjointAndOrdered(t *testing.T) {
	svc := NewPostService(seedPosts(3), nil, "", quietLogger())
	ctx := context.Background()

	first, err := svc.List(ctx, 0, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	second, err := svc.List(ctx, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if first.Total != 3 || second.Total != 3 {
		t.Fatalf("totals = %d, %d, want 3", first.Total, second.Total)
	}
	if len(first.Posts) != 2 || len(second.Posts) != 1 {
		t.Fatalf("page sizes = %d, %d", len(first.Posts), len(second.Posts))
	}

	seen := map[int64]bool{}
	var all []PostListItem
	all = append(all, first.Posts...)
	all = append(all, second.Posts...)
	for _, p := range all {
		if seen[p.ID] {
			t.Fatalf("post %d appears on two pages", p.ID)
		}
		seen[p.ID] = true
	}
	for i := 1; i < len(all); i++ {
		if all[i].LastUpdateDate.After(all[i-1].LastUpdateDate) {
			t.Fatalf("posts out of order at index %d", i)
		}
	}
}

func TestPostListProjection(t *testing.T) {
	svc := NewPostService(seedPosts(1), nil, "", quietLogger())

	page, err := svc.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	item := page.Posts[0]
	if item.Author != "Ada (ada@example.com)" {
		t.Errorf("author = %q", item.Author)
	}
	if item.Category != "Backend" {
		t.Errorf("category = %q", item.Category)
	}
}

func TestPostListByCategoryFilters(t *testing.T) {
	svc := NewPostService(seedPosts(4), nil, "", quietLogger())

	page, err := svc.ListByCategory(context.Background(), "devops", 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 || len(page.Posts) != 2 {
		t.Fatalf("total = %d, posts = %d, want 2 devops posts", page.Total, len(page.Posts))
	}
	for _, p := range page.Posts {
		if p.Category != "DevOps" {
			t.Errorf("post %d has category %q", p.ID, p.Category)
		}
	}
}

func TestPostGet(t *testing.T) {
	svc := NewPostService(seedPosts(2), nil, "", quietLogger())
	ctx := context.Background()

	p, err := svc.Get(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.ID != 2 {
		t.Errorf("id = %d", p.ID)
	}

	if _, err := svc.Get(ctx, 404); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestPostSearchWithoutIndexConfigured(t *testing.T) {
	svc := NewPostService(seedPosts(1), nil, "", quietLogger())

	hits, err := svc.Search(context.Background(), "anything", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("got %d hits without an index", len(hits))
	}
}

func TestPostIndexWithoutIndexConfigured(t *testing.T) {
	svc := NewPostService(seedPosts(1), nil, "", quietLogger())
	p, _ := svc.Get(context.Background(), 1)
	if err := svc.IndexPost(context.Background(), p); err != nil {
		t.Fatalf("index without es should be a no-op, got %v", err)
	}
}
