package main

import (
	"context"
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

	"github.com/conduit-labs/conduit/internal/config"
	mysqlRepo "github.com/conduit-labs/conduit/internal/repository/mysql"
	redisRepo "github.com/conduit-labs/conduit/internal/repository/redis"
	"github.com/conduit-labs/conduit/internal/rest"
	"github.com/conduit-labs/conduit/internal/rest/middleware"
	"github.com/conduit-labs/conduit/internal/usecase/article"
	"github.com/conduit-labs/conduit/internal/usecase/comment"
	"github.com/conduit-labs/conduit/internal/usecase/profile"
	"github.com/conduit-labs/conduit/internal/usecase/tag"
	"github.com/conduit-labs/conduit/internal/usecase/user"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	// prepare database
	var db *gorm.DB
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	if err != nil {
		log.Fatal("could not connect to database after retries: ", err)
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
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache: ", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	// Prepare Repository
	articleRepo := mysqlRepo.NewArticleRepository(db)
	tagRepo := mysqlRepo.NewTagRepository(db)
	favoriteRepo := mysqlRepo.NewFavoriteRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	tagCache := redisRepo.NewTagCache(client)
	bloomRepo := redisRepo.NewRedisBloomRepo(client, cfg.BloomFilterSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build service Layer
	articleSvc := article.NewService(articleRepo, tagRepo, favoriteRepo, userRepo, bloomRepo)
	tagSvc := tag.NewService(tagRepo, tagCache)
	userSvc := user.NewService(userRepo, []byte(cfg.JWTSecret), cfg.JWTExpire)
	profileSvc := profile.NewService(userRepo, followRepo)
	commentSvc := comment.NewService(commentRepo, articleRepo, userRepo, followRepo)

	articleHandler := rest.NewArticleHandler(articleSvc)
	tagHandler := rest.NewTagHandler(tagSvc)
	userHandler := rest.NewUserHandler(userSvc)
	profileHandler := rest.NewProfileHandler(profileSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg.JWTSecret)

	// Prepare bloom filter
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	api := route.Group("/api")

	api.POST("/users", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/tags", tagHandler.List)

	public := api.Group("/")
	public.Use(optionalAuth)
	{
		public.GET("/articles", articleHandler.List)
		public.GET("/articles/:slug", articleHandler.Get)
		public.GET("/articles/:slug/comments", commentHandler.List)
		public.GET("/profiles/:username", profileHandler.Get)
	}

	authorized := api.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/user", userHandler.GetCurrent)
		authorized.PUT("/user", userHandler.Update)

		authorized.POST("/profiles/:username/follow", profileHandler.Follow)
		authorized.DELETE("/profiles/:username/follow", profileHandler.Unfollow)

		authorized.GET("/articles/feed", articleHandler.Feed)
		authorized.POST("/articles", articleHandler.Create)
		authorized.PUT("/articles/:slug", articleHandler.Update)
		authorized.DELETE("/articles/:slug", articleHandler.Delete)

		authorized.POST("/articles/:slug/favorite", articleHandler.Favorite)
		authorized.DELETE("/articles/:slug/favorite", articleHandler.Unfavorite)

		authorized.POST("/articles/:slug/comments", commentHandler.Add)
		authorized.DELETE("/articles/:slug/comments/:id", commentHandler.Delete)
	}

	// Start Server
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

	log.Println("Server exiting")
}
