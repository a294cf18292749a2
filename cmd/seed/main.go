// Command seed is a one-shot operational bootstrap: it creates the initial
// admin account if it does not already exist. It is deliberately not an API
// route.
//
// Username and password default to admin/admin123 and can be overridden with
// SEED_ADMIN_USERNAME and SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/service"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/infrastructure/config"
	mongodb "github.com/VarshaKulal/CODECRAFT-FS-02/internal/infrastructure/db/mongo"
	"github.com/VarshaKulal/CODECRAFT-FS-02/pkg/logger"
)

type seedConfig struct {
	Username string `env:"SEED_ADMIN_USERNAME, default=admin"`
	Password string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
}

func main() {
	cfg := config.Load()

	var seed seedConfig
	if err := envconfig.Process(context.Background(), &seed); err != nil {
		panic(fmt.Sprintf("seed: failed to load configuration: %v", err))
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	if _, err := userRepo.FindByUsername(ctx, seed.Username); err == nil {
		log.Info().Str("username", seed.Username).Msg("admin already exists")
		return
	} else if err != domain.ErrUserNotFound {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	// Session store is not needed for registration; the auth service only
	// touches it on login.
	authService := service.NewAuthService(userRepo, nil, cfg.Auth.BcryptCost, cfg.Session.TTL, log)
	if _, err := authService.Register(ctx, seed.Username, seed.Password, domain.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("username", seed.Username).Msg("admin created")
}
