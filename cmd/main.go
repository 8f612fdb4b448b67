package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/cjudge-2025.net/internal/adapter/crypto"
	"gitlab.com/cjudge-2025.net/internal/adapter/judge0"
	"gitlab.com/cjudge-2025.net/internal/adapter/postgres/languagerepository"
	"gitlab.com/cjudge-2025.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/cjudge-2025.net/internal/adapter/postgres/testcaserepository"
	"gitlab.com/cjudge-2025.net/internal/adapter/redis/testcasecache"
	"gitlab.com/cjudge-2025.net/internal/config"
	"gitlab.com/cjudge-2025.net/internal/core/services/judge"
	"gitlab.com/cjudge-2025.net/internal/core/services/submission"
	logger2 "gitlab.com/cjudge-2025.net/internal/global/logger"
	"gitlab.com/cjudge-2025.net/internal/handlers"
	http2 "gitlab.com/cjudge-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting judge service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)
	languageRepo := languagerepository.NewLanguageRepository(db, logger)
	testCaseRepo := testcasecache.NewCachedTestCaseRepository(
		redisClient,
		testcaserepository.NewTestCaseRepository(db, logger),
		logger,
	)
	sandbox := judge0.NewClient(sysCfg.ExecutorConfig, &http.Client{Timeout: 30 * time.Second}, logger)

	// PRIMARY PORTS
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	judgeSvc := judge.NewJudgeService(sandbox, sysCfg.JudgeConfig, logger)
	submissionSvc := submission.NewSubmissionService(submissionRepo, testCaseRepo, languageRepo, judgeSvc, logger)
	serviceProvider := http2.NewServiceProvider(submissionSvc, judgeSvc)

	// server
	middleware := handlers.New(jwtProvider)
	httpServer := http2.NewServer(sysCfg.Port, "judgeService", *serviceProvider, middleware, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
