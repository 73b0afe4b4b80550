package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrms_backend/internals/configs"
	database "hrms_backend/internals/databases"
	routes "hrms_backend/internals/route"
	"hrms_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("[ERROR] database: %v", err)
	}
	if err := database.Ping(context.Background(), db); err != nil {
		log.Fatalf("[ERROR] database ping: %v", err)
	}
	log.Println("[INFO] DB connected.")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("[ERROR] migrate: %v", err)
	}
	seeds.RunAllSeeds(db, cfg)

	app := routes.NewApp(db, cfg)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("[ERROR] server: %v", err)
		}
	}()

	// graceful shutdown, then close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("[WARN] close db: %v", err)
	}
}
