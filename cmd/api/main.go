package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bookstore-api/internal/config"
	"bookstore-api/internal/docstore"
	"bookstore-api/internal/gateway/stripecheckout"
	"bookstore-api/internal/httpserver"
	cartrepo "bookstore-api/internal/repository/cart"
	productrepo "bookstore-api/internal/repository/product"
	userrepo "bookstore-api/internal/repository/user"
	authsvc "bookstore-api/internal/service/auth"
	cartsvc "bookstore-api/internal/service/cart"
	catalogsvc "bookstore-api/internal/service/catalog"
	checkoutsvc "bookstore-api/internal/service/checkout"
	productsvc "bookstore-api/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	store := docstore.NewFileStore(cfg.DataDir, logger)

	productRepo := productrepo.NewDocument(store, logger)
	userRepo := userrepo.NewDocument(store, logger)
	cartRepo := cartrepo.NewDocument(store, logger)

	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := catalogsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	productService := productsvc.New(productRepo)

	var checkoutService httpserver.CheckoutService
	if cfg.StripeSecretKey != "" {
		gateway := stripecheckout.New(cfg.StripeSecretKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
		checkoutService = checkoutsvc.New(cartRepo, gateway)
	} else {
		logger.Printf("STRIPE_SECRET_KEY not set, checkout endpoints disabled")
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Auth:     authService,
		Catalog:  catalogService,
		Cart:     cartService,
		Products: productService,
		Checkout: checkoutService,
		Store:    store,
	}, cfg.AllowedOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
