package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/community-comments/internal/auth"
	"github.com/Guyuepp/community-comments/internal/config"
	"github.com/Guyuepp/community-comments/internal/repository"
	mysqlRepo "github.com/Guyuepp/community-comments/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/community-comments/internal/repository/redis"
	"github.com/Guyuepp/community-comments/internal/rest"
	"github.com/Guyuepp/community-comments/internal/rest/middleware"
	"github.com/Guyuepp/community-comments/internal/usecase/article"
	"github.com/Guyuepp/community-comments/internal/usecase/comment"
	"github.com/Guyuepp/community-comments/internal/usecase/user"
)

const dbRetryInterval = 2 * time.Second

func setupLogger(cfg config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

// openDB 连接数据库，失败时按间隔重试
func openDB(cfg config.Database) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range cfg.MaxRetry {
		db, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
			TranslateError:         true,
			SkipDefaultTransaction: true,
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if dbErr = sqlDB.Ping(); dbErr == nil {
					return db, nil
				}
				_ = sqlDB.Close()
			}
			err = dbErr
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, cfg.MaxRetry, err)
		time.Sleep(dbRetryInterval)
	}
	return nil, err
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	setupLogger(cfg)

	// prepare database
	db, err := openDB(cfg.Database)
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("got error when getting sql.DB from gorm.DB: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()

	if cfg.MigrationsEnabled {
		if err := mysqlRepo.RunMigrations(sqlDB, cfg.Database.Name); err != nil {
			logrus.Fatalf("failed to run migrations: %v", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	likeRepo := mysqlRepo.NewCommentLikeRepository(db)

	// Article: DB层 + Cache层 + 协调层
	articleDBRepo := mysqlRepo.NewArticleDBRepository(db)
	articleCache := myRedisCache.NewArticleCache(client)
	articleRepo := repository.NewArticleRepository(articleDBRepo, articleCache)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomFilterSize)

	// Build service Layer
	tokens := auth.NewJWT([]byte(cfg.JWTSecret), cfg.JWTTTL())
	discord := auth.NewDiscord(cfg.Discord.ClientID, cfg.Discord.ClientSecret, cfg.Discord.RedirectURL)

	articleSvc := article.NewService(articleRepo, bloomRepo)
	userSvc := user.NewService(userRepo, tokens)
	commentSvc := comment.NewService(commentRepo, likeRepo, userRepo, articleRepo, bloomRepo)

	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatalf("failed to init bloom filter: %v", err)
	}

	articleHandler := rest.NewArticleHandler(articleSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	userHandler := rest.NewUserHandler(userSvc)
	authHandler := rest.NewAuthHandler(userSvc, discord, cfg.JWTTTL(), os.Getenv("GIN_MODE") == gin.ReleaseMode)

	// prepare gin
	route := gin.New()
	route.Use(gin.Logger(), gin.Recovery())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	route.Use(middleware.Session(tokens, userSvc))

	// Register routes
	route.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	route.GET("/auth/discord", authHandler.Login)
	route.GET("/auth/discord/callback", authHandler.Callback)
	route.POST("/auth/logout", authHandler.Logout)
	route.GET("/me", userHandler.Me)

	route.GET("/articles", articleHandler.Fetch)
	route.GET("/articles/:id", articleHandler.GetByID)
	route.POST("/articles", articleHandler.Store)
	route.PUT("/articles/:id", articleHandler.Update)
	route.DELETE("/articles/:id", articleHandler.Delete)

	route.GET("/comments", commentHandler.FetchByArticle)
	route.POST("/comments", commentHandler.Create)
	route.GET("/comments/:id", commentHandler.GetByID)
	route.PUT("/comments/:id", commentHandler.Update)
	route.DELETE("/comments/:id", commentHandler.Delete)
	route.POST("/comments/:id/like", commentHandler.ToggleLike)
	route.GET("/comments/:id/like", commentHandler.IsLiked)

	admin := route.Group("/admin")
	{
		admin.GET("/comments", commentHandler.FetchForModeration)
		admin.GET("/users", userHandler.Fetch)
		admin.POST("/users/:id/ban", userHandler.ToggleBan)
		admin.POST("/users/:id/promote", userHandler.Promote)
		admin.POST("/users/:id/demote", userHandler.Demote)
	}

	// Start Server
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           route,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server exiting")
}
