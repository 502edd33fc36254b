package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mosaic/internal/config"
	"mosaic/internal/db"
	"mosaic/internal/model"
	"mosaic/internal/repository"
)

const seedPassword = "password123"

type seedUser struct {
	name  string
	email string
	bio   string
	role  string
}

var seedUsers = []seedUser{
	{name: "Admin", email: "admin@mosaic.local", bio: "keeping the lights on", role: model.RoleAdmin},
	{name: "Ada Lovelace", email: "ada@mosaic.local", bio: "notes on the analytical engine", role: model.RoleUser},
	{name: "Grace Hopper", email: "grace@mosaic.local", bio: "it's easier to ask forgiveness", role: model.RoleUser},
	{name: "Alan Turing", email: "alan@mosaic.local", bio: "machinery and intelligence", role: model.RoleUser},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Post{},
		&model.PostLike{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	users := make([]*model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		if existing, err := userRepo.FindByEmail(ctx, su.email); err == nil {
			users = append(users, existing)
			continue
		}
		u := &model.User{
			ID:           uuid.New(),
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Bio:          su.bio,
			Role:         su.role,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", su.email, err)
		}
		users = append(users, u)
	}
	log.Printf("seeded %d users (password %q)", len(users), seedPassword)

	// Everyone follows Ada; Ada follows Grace.
	ada, grace := users[1], users[2]
	for _, u := range users {
		if u.ID == ada.ID {
			continue
		}
		if err := followRepo.Create(ctx, &model.Follow{FollowerID: u.ID, FolloweeID: ada.ID}); err != nil {
			log.Fatalf("create follow: %v", err)
		}
	}
	if err := followRepo.Create(ctx, &model.Follow{FollowerID: ada.ID, FolloweeID: grace.ID}); err != nil {
		log.Fatalf("create follow: %v", err)
	}

	seeded := 0
	for i, u := range users[1:] {
		post := &model.Post{
			ID:     uuid.New(),
			UserID: u.ID,
			Text:   fmt.Sprintf("hello from %s", u.Name),
		}
		if err := postRepo.Create(ctx, post); err != nil {
			log.Fatalf("create post: %v", err)
		}
		seeded++

		comment := &model.Comment{
			ID:     uuid.New(),
			Text:   "welcome aboard!",
			UserID: users[(i+2)%len(users)].ID,
			PostID: post.ID,
		}
		if err := commentRepo.Create(ctx, comment); err != nil {
			log.Fatalf("create comment: %v", err)
		}
		if err := postRepo.Like(ctx, post.ID, ada.ID); err != nil {
			log.Fatalf("like post: %v", err)
		}
	}

	log.Printf("seeded %d posts with comments and likes", seeded)
	log.Println("Seed complete")
}
