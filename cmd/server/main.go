package main

import (
	"log"

	"github.com/franciscozv/iglesia-admin/internal/config"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/server"
	"github.com/franciscozv/iglesia-admin/pkg/database"
	"github.com/franciscozv/iglesia-admin/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.Connect()

	if err := db.AutoMigrate(
		&model.User{},
		&model.Person{},
		&model.Group{},
		&model.PeopleRole{},
		&model.GroupMember{},
		&model.GroupRoleAssignment{},
		&model.EventType{},
		&model.Place{},
		&model.Event{},
		&model.Responsibility{},
		&model.Participant{},
		&model.PostEvent{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, stat caching and live notifications disabled")
	}

	var searchClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		searchClient = meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	} else {
		log.Println("MEILISEARCH_HOST not set, people search falls back to the database")
	}

	var photos storage.PhotoStorage
	if cfg.CloudinaryURL != "" {
		photos, err = storage.NewCloudinaryStorage()
		if err != nil {
			log.Fatalf("failed to init cloudinary storage: %v", err)
		}
	} else {
		photos, err = storage.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
		if err != nil {
			log.Fatalf("failed to init local storage: %v", err)
		}
	}

	srv := server.NewServer(cfg, db, redisClient, searchClient, photos)

	log.Printf("server listening on port %s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
