package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/config"
	"github.com/lexilens-ai/lexilens-engine/pkg/database"
	"github.com/lexilens-ai/lexilens-engine/pkg/handlers"
	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
	"github.com/lexilens-ai/lexilens-engine/pkg/logging"
	"github.com/lexilens-ai/lexilens-engine/pkg/middleware"
	"github.com/lexilens-ai/lexilens-engine/pkg/repositories"
	"github.com/lexilens-ai/lexilens-engine/pkg/retry"
	"github.com/lexilens-ai/lexilens-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "local" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.ConnectionString())),
		zap.String("vision_model", cfg.Vision.Model),
		zap.String("chat_provider", cfg.Chat.Provider),
		zap.String("speech_model", cfg.Speech.Model))

	ctx := context.Background()

	// The database may still be starting; back off until it answers.
	var db *database.DB
	dbCfg := &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	}
	err = retry.Do(ctx, retry.DefaultConfig(), func() error {
		var connErr error
		db, connErr = database.NewConnection(ctx, dbCfg)
		if connErr != nil {
			logger.Warn("database not ready", zap.Error(connErr))
		}
		return connErr
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("failed to close migration connection", zap.Error(err))
	}

	visionClient, err := llm.NewClient(&llm.Config{
		Endpoint: cfg.Vision.BaseURL,
		Model:    cfg.Vision.Model,
		APIKey:   cfg.Vision.APIKey,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create vision client", zap.Error(err))
	}

	var chatClient llm.ChatClient
	switch cfg.Chat.Provider {
	case "anthropic":
		chatClient, err = llm.NewAnthropicClient(&llm.Config{
			Endpoint: cfg.Chat.BaseURL,
			Model:    cfg.Chat.Model,
			APIKey:   cfg.Chat.APIKey,
		}, logger)
	default:
		chatEndpoint := cfg.Chat.BaseURL
		if chatEndpoint == "" {
			chatEndpoint = "https://api.openai.com/v1"
		}
		chatClient, err = llm.NewClient(&llm.Config{
			Endpoint: chatEndpoint,
			Model:    cfg.Chat.Model,
			APIKey:   cfg.Chat.APIKey,
		}, logger)
	}
	if err != nil {
		logger.Fatal("failed to create chat client", zap.Error(err))
	}

	speechClient, err := llm.NewClient(&llm.Config{
		Endpoint: cfg.Speech.BaseURL,
		Model:    cfg.Speech.Model,
		APIKey:   cfg.Speech.APIKey,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create speech client", zap.Error(err))
	}

	wordRepo := repositories.NewWordRepository(db)

	scanService := services.NewScanService(visionClient, wordRepo, cfg.Vision.Language, logger)
	vocabService := services.NewVocabularyService(wordRepo, logger)
	chatService := services.NewChatService(chatClient, wordRepo, logger)
	speechService := services.NewSpeechService(speechClient, cfg.Speech.Voice, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewScanHandler(scanService, logger).RegisterRoutes(mux)
	handlers.NewVocabularyHandler(vocabService, logger).RegisterRoutes(mux)
	handlers.NewChatHandler(chatService, logger).RegisterRoutes(mux)
	handlers.NewSpeechHandler(speechService, logger).RegisterRoutes(mux)

	handler := middleware.Recover(logger)(middleware.RequestLogger(logger)(mux))

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting lexilens-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", zap.Error(err))
	}
}
