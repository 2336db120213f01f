package router

import (
	"blogapi/internal/application"
	"blogapi/internal/container"
	pginfra "blogapi/internal/infrastructure/postgres"
	handlers "blogapi/internal/interface/http"
	"blogapi/internal/router/modules"
	"blogapi/pkg/helpers"
)

func buildAccountModule() *modules.AccountModule {
	cfg := container.GetConfig()
	repo := pginfra.NewUserRepository(container.GetPGPool())

	var images application.ImageStore
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		images = &helpers.GCSImageStore{Client: gcs, Bucket: cfg.GCSBucket}
	}
	var pub application.Publisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	svc := application.NewAccountService(repo, container.GetJWT(), images, pub, container.GetLogger(), cfg)
	h := handlers.NewAccountHandler(svc, container.GetLogger())
	return modules.NewAccountModule(h, container.GetJWT())
}

func buildCategoryModule() *modules.CategoryModule {
	cfg := container.GetConfig()
	repo := pginfra.NewCategoryRepository(container.GetPGPool())
	svc := application.NewCategoryService(repo, container.GetCache(), cfg.CategoryCacheTTL, container.GetLogger())
	h := handlers.NewCategoryHandler(svc, container.GetLogger())
	return modules.NewCategoryModule(h)
}

func buildPostModule() *modules.PostModule {
	cfg := container.GetConfig()
	repo := pginfra.NewPostRepository(container.GetPGPool())
	svc := application.NewPostService(repo, container.GetES(), cfg.ESPostsIndex, container.GetLogger())
	h := handlers.NewPostHandler(svc, container.GetLogger())
	return modules.NewPostModule(h)
}

// InitModules initializes all application modules and registers them with the router registry.
// Called once during startup after the container singletons are set.
func InitModules(r *Registry) {
	r.Add(modules.NewHomeModule(handlers.NewHomeHandler(container.GetConfig())))
	r.Add(buildAccountModule())
	r.Add(buildCategoryModule())
	r.Add(buildPostModule())
	r.Add(modules.NewDebugModule())
}
