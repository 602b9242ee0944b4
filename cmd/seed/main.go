package main

import (
	"context"
	"flag"
	"log"
	"os"

	"bookstore-api/internal/config"
	"bookstore-api/internal/docstore"
	cartrepo "bookstore-api/internal/repository/cart"
	productrepo "bookstore-api/internal/repository/product"
	userrepo "bookstore-api/internal/repository/user"
	"bookstore-api/internal/seed"
)

func main() {
	var (
		adminEmail    string
		adminPassword string
		adminName     string
	)
	flag.StringVar(&adminEmail, "admin-email", "admin@bookstore.local", "Email for the seeded admin account")
	flag.StringVar(&adminPassword, "admin-password", "", "Password for the seeded admin account")
	flag.StringVar(&adminName, "admin-name", "Administrator", "Display name for the seeded admin account")
	flag.Parse()

	if adminPassword == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store := docstore.NewFileStore(cfg.DataDir, logger)
	ctx := context.Background()

	err := seed.Apply(ctx,
		productrepo.NewDocument(store, logger),
		userrepo.NewDocument(store, logger),
		cartrepo.NewDocument(store, logger),
		seed.Options{
			AdminEmail:    adminEmail,
			AdminPassword: adminPassword,
			AdminName:     adminName,
		})
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
