package main

import (
	"log"

	"github.com/immortalfoodie/Ecosphere/internal/config"
	"github.com/immortalfoodie/Ecosphere/internal/db"
	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/server"
	"github.com/joho/godotenv"
)

// Set via -ldflags at build time.
var (
	gitSHA    = "dev"
	buildTime = "unknown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.Account{}, &model.StateRecord{}); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv, err := server.New(conn, cfg, gitSHA, buildTime)
	if err != nil {
		log.Fatalf("server init error: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
