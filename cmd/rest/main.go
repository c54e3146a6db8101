package main

import (
	"log"

	"github.com/tomymaritano/viny-sub011/internal/bootstrap"
	"github.com/tomymaritano/viny-sub011/internal/config"
	"github.com/tomymaritano/viny-sub011/internal/server"
	"github.com/tomymaritano/viny-sub011/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
