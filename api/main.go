package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	_ "github.com/nadeekaauto/parts-inventory/docs"
	"github.com/nadeekaauto/parts-inventory/internal/config"
	"github.com/nadeekaauto/parts-inventory/internal/db"
	api "github.com/nadeekaauto/parts-inventory/internal/http"
	"github.com/nadeekaauto/parts-inventory/internal/http/handlers"
	rl "github.com/nadeekaauto/parts-inventory/internal/http/rate_limiter"
	"github.com/nadeekaauto/parts-inventory/internal/redissvc"
	"github.com/nadeekaauto/parts-inventory/internal/repo"
)

// @title Parts Inventory API
// @version 1.0
// @description REST API for managing spare-part inventory records.
// @host localhost:7788
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("❌ Could not ensure database schema:", err)
	}

	// Redis only carries event logs; running without it is fine.
	if cfg.RedisAddr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("⚠️ Could not connect to Redis, event logging disabled: %v", err)
		} else {
			defer rdb.Close()
			api.SetRedisService(redissvc.NewRedisService(rdb, ctx))
		}
	}

	go rl.StartVisitorCleanupLoop()

	handlers.SetItemRepo(repo.NewPostgresItemRepository(database))

	r := api.NewRouter()
	log.Println("✅ Server running on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
