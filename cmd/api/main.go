// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/vinachat/chat-api/infrastructure/persistence/database"
	"github.com/vinachat/chat-api/pkg/app"
	"github.com/vinachat/chat-api/pkg/configs"
	"github.com/vinachat/chat-api/pkg/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigration(db.DB); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatalf("connect redis: %v", err)
	}
	cancelPing()
	defer redisClient.Close()

	container, err := di.NewContainer(db.DB, redisClient, cfg)
	if err != nil {
		log.Fatalf("build container: %v", err)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go container.Hub.Run(hubCtx)

	// Expired blacklist rows are dead weight once the tokens they block
	// have lapsed anyway.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-hubCtx.Done():
				return
			case <-ticker.C:
				if err := container.BlacklistRepo.PurgeExpired(); err != nil {
					log.Printf("purge token blacklist: %v", err)
				}
			}
		}
	}()

	fiberApp := app.New(container, cfg)

	go func() {
		if err := fiberApp.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()
	log.Printf("chat-api listening on :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	stopHub()
	if err := fiberApp.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
