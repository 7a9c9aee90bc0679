// Command server — сервис витрины: страница, корзина, заказы и меню в рамках сессии.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("env", ".env.local", "файл с переменными окружения (необязателен)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load %s: %v", *envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	runErr := a.Run(ctx)
	if runErr != nil {
		a.Logger.Errorf(ctx, "run: %v", runErr)
	}
	cleanup()
	if runErr != nil {
		os.Exit(1)
	}
}
