package main

import (
	"log"
	"os"

	"github.com/tomymaritano/viny-sub011/internal/model"
	"github.com/tomymaritano/viny-sub011/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration...")

	// The note_status enum must exist before AutoMigrate binds columns to it.
	setupSQL := []string{
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'note_status') THEN CREATE TYPE note_status AS ENUM ('draft', 'in-progress', 'review', 'completed', 'archived'); END IF; END $$;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: setup SQL failed: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.User{},
		&model.Notebook{},
		&model.Note{},
		&model.Tag{},
		&model.NoteTag{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("Migration complete: %d tables are up to date", len(models))
}
