package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"blogapi/config"
	"blogapi/internal/application"
	pginfra "blogapi/internal/infrastructure/postgres"
	"blogapi/pkg/helpers"
)

// Bulk-indexes all posts into the Elasticsearch posts index so that
// GET /v1/posts/search has data to serve.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-reindex", cfg.Env)

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init elasticsearch client: %v", err)
	}

	repo := pginfra.NewPostRepository(pool)
	svc := application.NewPostService(repo, es, cfg.ESPostsIndex, logger)

	posts, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatalf("failed to load posts: %v", err)
	}

	indexed := 0
	for i := range posts {
		if err := svc.IndexPost(ctx, &posts[i]); err != nil {
			logger.WithError(err).WithField("post_id", posts[i].ID).Warn("index failed")
			continue
		}
		indexed++
	}
	logger.Infof("indexed %d/%d posts into %s", indexed, len(posts), cfg.ESPostsIndex)
}
