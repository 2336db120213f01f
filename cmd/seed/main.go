package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"blogapi/config"
	"blogapi/pkg/helpers"
)

// Seeds a demo author with roles, a couple of categories and a few posts.
// Posts are read-only through the API, so this is the only write path for
// them outside of direct SQL.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "author@example.com"
	password := "password123"
	name := "Demo Author"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, image, slug)
		VALUES ($1, $2, $3, '', $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, helpers.EmailSlug(email)).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", userID, email, password)

	// Ensure base roles exist and assign them to the seeded user
	for _, role := range []struct{ name, slug string }{
		{"admin", "admin"},
		{"author", "author"},
	} {
		var roleID int64
		if err := db.QueryRow(`
			INSERT INTO roles (name, slug) VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, role.name, role.slug).Scan(&roleID); err != nil {
			log.Fatalf("failed to upsert role %s: %v", role.name, err)
		}
		if _, err := db.Exec(`
			INSERT INTO user_roles (user_id, role_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, role_id) DO NOTHING
		`, userID, roleID); err != nil {
			log.Fatalf("failed to assign role %s: %v", role.name, err)
		}
	}
	fmt.Println("roles ensured and assigned")

	categories := []struct{ name, slug string }{
		{"Backend", "backend"},
		{"DevOps", "devops"},
	}
	categoryIDs := make(map[string]int64, len(categories))
	for _, c := range categories {
		var id int64
		if err := db.QueryRow(`
			INSERT INTO categories (name, slug) VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, c.name, c.slug).Scan(&id); err != nil {
			log.Fatalf("failed to upsert category %s: %v", c.slug, err)
		}
		categoryIDs[c.slug] = id
	}
	fmt.Printf("categories ensured: %v\n", categoryIDs)

	posts := []struct {
		title, slug, body, category string
	}{
		{"Getting started with Go", "getting-started-with-go", "A tour of the toolchain.", "backend"},
		{"Structuring web services", "structuring-web-services", "Layers, packages and boundaries.", "backend"},
		{"Zero-downtime deploys", "zero-downtime-deploys", "Rolling releases in practice.", "devops"},
	}
	for _, p := range posts {
		if _, err := db.Exec(`
			INSERT INTO posts (title, slug, body, last_update_date, author_id, category_id)
			VALUES ($1, $2, $3, now(), $4, $5)
			ON CONFLICT (slug) DO NOTHING
		`, p.title, p.slug, p.body, userID, categoryIDs[p.category]); err != nil {
			log.Fatalf("failed to seed post %s: %v", p.slug, err)
		}
	}
	fmt.Printf("seeded %d posts\n", len(posts))
}
