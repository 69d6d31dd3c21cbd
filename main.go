package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chatforge/internal/database"
	"chatforge/internal/events"
	"chatforge/internal/utils"
)

func main() {
	if err := utils.LoadEnv(); err != nil && database.IsDevelopment() {
		log.Printf("no .env loaded: %v", err)
	}

	if database.IsDevelopment() {
		events.EnableLogEmitter()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath := os.Getenv("CHATFORGE_DB")
	if dbPath == "" {
		dbPath = database.GetDefaultDBPath()
	}

	app := NewApp()
	if err := app.startup(ctx, dbPath); err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer app.shutdown()

	log.Printf("chatforge store ready (%s)", dbPath)
	<-ctx.Done()
}
