// Seeds a demo account and its starter ledger snapshot. Safe to re-run: an
// existing demo account is left alone unless FORCE_SEED=true.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/immortalfoodie/Ecosphere/internal/config"
	"github.com/immortalfoodie/Ecosphere/internal/db"
	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/repository"
	"github.com/immortalfoodie/Ecosphere/internal/seed"
	"github.com/immortalfoodie/Ecosphere/internal/service"
)

const demoEmail = "demo@ecosphere.app"
const demoPassword = "demo-pass"

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(&model.Account{}, &model.StateRecord{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	accounts := repository.NewAccountRepository(conn)
	exists := false
	if _, err := accounts.FindByEmail(ctx, demoEmail); err == nil {
		if os.Getenv("FORCE_SEED") != "true" {
			log.Printf("demo account already exists; skipping seed (set FORCE_SEED=true to override)")
			return nil
		}
		exists = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check demo account: %w", err)
	}

	if !exists {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		account := &model.Account{Email: demoEmail, Name: "Demo User", PasswordHash: string(hash)}
		if err := accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("create demo account: %w", err)
		}
	}

	payload, err := json.Marshal(seed.State())
	if err != nil {
		return fmt.Errorf("marshal seed state: %w", err)
	}
	states := repository.NewStateRepository(conn)
	if err := states.Save(ctx, service.StorageKey(demoEmail), payload); err != nil {
		return fmt.Errorf("save seed snapshot: %w", err)
	}

	log.Printf("seeded demo account %s", demoEmail)
	return nil
}
