// Package main seeds demo users and wallets for local development.
package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"flux/internal/config"
	"flux/internal/repositories"
	"flux/internal/services/user"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	db, err := repositories.NewDB(cfg)
	if err != nil {
		logrus.Fatalf("failed to initialize database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	uow := repositories.NewUnitOfWork(db)
	userService := user.NewService(userRepo, uow, cfg.StartingBalance)

	seeds := []user.RegisterInput{
		{
			FullName: "Alice Souza",
			Document: "529.982.247-25",
			Email:    "alice@example.com",
			Password: "Sup3rSecret",
			Type:     "COMMON",
		},
		{
			FullName: "Bob Lima",
			Document: "168.995.350-09",
			Email:    "bob@example.com",
			Password: "Sup3rSecret",
			Type:     "COMMON",
		},
		{
			FullName: "Mercado Central LTDA",
			Document: "11.222.333/0001-81",
			Email:    "loja@example.com",
			Password: "Sup3rSecret",
			Type:     "MERCHANT",
		},
	}

	ctx := context.Background()
	for _, seed := range seeds {
		created, err := userService.Register(ctx, seed)
		if err != nil {
			logrus.Warnf("skipping %s: %v", seed.Email, err)
			continue
		}
		logrus.Infof("seeded user %d (%s)", created.ID, created.Email)
	}
}
