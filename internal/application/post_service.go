package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"blogapi/internal/domain/entity"
	"blogapi/internal/domain/repository"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// PostListItem is the listing projection of a post.
type PostListItem struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	LastUpdateDate time.Time `json:"lastUpdateDate"`
	Category       string    `json:"category"`
	Author         string    `json:"author"`
}

// PostPage is one page of the post listing plus pagination math inputs.
type PostPage struct {
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Posts    []PostListItem `json:"posts"`
}

// PostService is the read path over posts, optionally backed by an
// Elasticsearch index for full-text search.
type PostService struct {
	Repo         repository.PostRepository
	ES           *elasticsearch.Client
	ESPostsIndex string
	Logger       *logrus.Logger
}

func NewPostService(repo repository.PostRepository, es *elasticsearch.Client, esPostsIndex string, logger *logrus.Logger) *PostService {
	return &PostService{Repo: repo, ES: es, ESPostsIndex: esPostsIndex, Logger: logger}
}

// clampPage normalizes a zero-based page index and a bounded page size.
func clampPage(page, pageSize int) (int, int) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func toListItem(p entity.Post) PostListItem {
	item := PostListItem{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		LastUpdateDate: p.LastUpdateDate,
	}
	if p.Category != nil {
		item.Category = p.Category.Name
	}
	if p.Author != nil {
		item.Author = fmt.Sprintf("%s (%s)", p.Author.Name, p.Author.Email)
	}
	return item
}

// List returns one page of posts ordered by most-recently-updated first.
func (s *PostService) List(ctx context.Context, page, pageSize int) (*PostPage, error) {
	page, pageSize = clampPage(page, pageSize)
	posts, total, err := s.Repo.List(ctx, page*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(posts, total, page, pageSize), nil
}

// ListByCategory returns one page of posts belonging to the category slug.
func (s *PostService) ListByCategory(ctx context.Context, slug string, page, pageSize int) (*PostPage, error) {
	page, pageSize = clampPage(page, pageSize)
	posts, total, err := s.Repo.ListByCategory(ctx, slug, page*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(posts, total, page, pageSize), nil
}

func buildPage(posts []entity.Post, total int64, page, pageSize int) *PostPage {
	items := make([]PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, toListItem(p))
	}
	return &PostPage{Total: total, Page: page, PageSize: pageSize, Posts: items}
}

// Get returns the full post with author (including roles) and category.
func (s *PostService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	return s.Repo.GetByID(ctx, id)
}

// IndexPost writes a post document into the search index.
func (s *PostService) IndexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":               p.ID,
		"title":            p.Title,
		"slug":             p.Slug,
		"body":             p.Body,
		"last_update_date": p.LastUpdateDate.Format(time.RFC3339Nano),
	}
	if p.Category != nil {
		doc["category"] = p.Category.Name
	}
	if p.Author != nil {
		doc["author"] = fmt.Sprintf("%s (%s)", p.Author.Name, p.Author.Email)
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESPostsIndex,
		DocumentID: fmt.Sprintf("%d", p.ID),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over post titles and bodies.
// Returns an empty result when search is not configured.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "body"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPostsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
