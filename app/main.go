package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/joho/godotenv"
	"github.com/lawaware/backend/internal/chat"
	"github.com/lawaware/backend/internal/config"
	mysqlRepo "github.com/lawaware/backend/internal/repository/mysql"
	redisCache "github.com/lawaware/backend/internal/repository/redis"
	"github.com/lawaware/backend/internal/rest"
	"github.com/lawaware/backend/internal/rest/middleware"
	"github.com/lawaware/backend/internal/usecase/article"
	"github.com/lawaware/backend/internal/usecase/engagement"
	"github.com/lawaware/backend/internal/usecase/reader"
	"github.com/lawaware/backend/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on the environment")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// prepare database
	var db *gorm.DB
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			var sqlDB *sql.DB
			if sqlDB, err = db.DB(); err == nil {
				if err = sqlDB.Ping(); err == nil {
					break
				}
				_ = sqlDB.Close()
			}
		}

		log.Printf("failed to connect to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr(),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err = client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache: ", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.RequestID())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	// prepare repositories
	articleRepo := mysqlRepo.NewArticleRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	userRepo := mysqlRepo.NewUserRepository(db)
	readRepo := mysqlRepo.NewReadRepository(db)
	articleCache := redisCache.NewArticleCache(client)
	bloomRepo := redisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)

	// start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	likesSyncer := workers.NewLikeCountSyncer(articleRepo, articleCache)
	go likesSyncer.Start(ctx)

	// build service layer
	articleSvc := article.NewService(articleRepo, articleCache, bloomRepo, cfg.PageSize)
	engagementSvc := engagement.NewService(articleRepo, commentRepo, userRepo, articleCache, bloomRepo, likesSyncer, cfg.CommentMaxLen)
	readerSvc := reader.NewService(userRepo, readRepo, articleRepo, bloomRepo)
	chatClient := chat.NewClient(cfg.ChatEndpoint, cfg.ChatModel, cfg.ChatAPIKey)

	articleHandler := rest.NewArticleHandler(articleSvc)
	engagementHandler := rest.NewEngagementHandler(engagementSvc)
	readerHandler := rest.NewReaderHandler(readerSvc)
	chatHandler := rest.NewChatHandler(chatClient)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// prepare bloom filter
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// register routes
	route.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	route.GET("/articles", articleHandler.List)
	route.GET("/articles/:id", articleHandler.GetByID)
	route.GET("/articles/:id/comments", engagementHandler.ListComments)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/articles", articleHandler.Create)
		authorized.PUT("/articles/:id", articleHandler.Update)
		authorized.POST("/articles/:id/like", engagementHandler.ToggleLike)
		authorized.GET("/articles/:id/like", engagementHandler.LikeStatus)
		authorized.POST("/articles/:id/comments", engagementHandler.AddComment)
		authorized.POST("/articles/:id/read", readerHandler.MarkRead)
		authorized.GET("/profile", readerHandler.Profile)
		authorized.POST("/chat", chatHandler.Chat)
	}

	// start server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
