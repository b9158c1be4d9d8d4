package main

import (
	"context"
	"flag"
	"os"

	"github.com/luckysnap/backend/config"
	"github.com/luckysnap/backend/internal/database"
	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/repository"
	"github.com/luckysnap/backend/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seeds (or resets) a back-office account. Password comes from the
// ADMIN_PASSWORD env var so it never lands in shell history.
func main() {
	username := flag.String("username", "admin", "admin username")
	displayName := flag.String("display-name", "Administrator", "display name")
	flag.Parse()

	log := logger.WithComponent("seed-admin")

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	cfg := config.Load()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to init database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	repo := repository.NewAdminUserRepository(pool)
	admin, err := repo.Upsert(context.Background(), &model.AdminUser{
		Username:     *username,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	})
	if err != nil {
		log.Fatal("failed to seed admin user", zap.Error(err))
	}

	log.Info("admin user ready", zap.String("username", admin.Username), zap.Int("id", admin.ID))
}
