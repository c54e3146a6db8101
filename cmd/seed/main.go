package main

import (
	"context"
	"log"
	"os"

	"github.com/tomymaritano/viny-sub011/internal/config"
	"github.com/tomymaritano/viny-sub011/internal/dto"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"
	"github.com/tomymaritano/viny-sub011/internal/repository/unitofwork"
	"github.com/tomymaritano/viny-sub011/internal/service"
	"github.com/tomymaritano/viny-sub011/pkg/database"

	"github.com/fatih/color"
)

const (
	seedEmail    = "demo@example.com"
	seedPassword = "demo-password"
)

// Seeds a demo account with a couple of notebooks, tags and notes. Safe to
// re-run: it exits early when the demo account already exists.
func main() {
	cfg := config.Load()
	if cfg.IsProduction() {
		log.Fatal("Error: seeding is disabled in production")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)

	existing, err := uowFactory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx,
		specification.ByEmail{Email: seedEmail},
	)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if existing != nil {
		color.Yellow("Demo account %s already exists, nothing to do", seedEmail)
		return
	}

	authService := service.NewAuthService(uowFactory, cfg.Auth)
	noteService := service.NewNoteService(uowFactory)

	auth, err := authService.Register(ctx, &dto.RegisterRequest{
		Email:    seedEmail,
		Password: seedPassword,
		Name:     "Demo User",
	})
	if err != nil {
		color.Red("Error: failed to register demo user: %v", err)
		os.Exit(1)
	}
	color.Green("Created demo user %s", auth.User.Email)

	notes := []dto.CreateNoteRequest{
		{
			Title:    "Welcome",
			Content:  "This notebook keeps your everyday notes. Pin the important ones.",
			Notebook: "Personal",
			IsPinned: true,
			Tags:     []string{"getting-started"},
		},
		{
			Title:    "Project kickoff",
			Content:  "Agenda: scope, milestones, owners. Follow up with the meeting notes.",
			Notebook: "Work",
			Status:   "in-progress",
			Tags:     []string{"meetings", "planning"},
		},
		{
			Title:    "Reading list",
			Content:  "The Go Programming Language, Designing Data-Intensive Applications.",
			Notebook: "Personal",
			Tags:     []string{"books"},
		},
	}

	for _, req := range notes {
		if _, err := noteService.Create(ctx, auth.User.Id, &req); err != nil {
			color.Red("Error: failed to seed note %q: %v", req.Title, err)
			os.Exit(1)
		}
	}

	color.Green("Seeded %d notes for %s", len(notes), seedEmail)
}
