package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"croupier/bot"
	"croupier/config"
	"croupier/database"
	"croupier/events"
	"croupier/metrics"
	"croupier/repository"
	"croupier/service"
	"croupier/web"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting croupier...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	// Initialize event bus and metrics collector
	eventBus := events.NewBus()
	metrics.NewCollector().Register(eventBus)

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Initialize services
	log.Info("Initializing services...")
	configService := service.NewGameConfigService(
		repository.NewGameConfigRepository(db),
		events.NewDirectPublisher(eventBus),
	)
	userService := service.NewUserService(uowFactory)
	casinoService := service.NewCasinoService(uowFactory, configService)
	blackjackService := service.NewBlackjackService(uowFactory, configService, service.NewMemorySessionStore())

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
	}
	discordBot, err := bot.New(botConfig, userService, casinoService, blackjackService)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized")

	// Start the admin web console
	webServer, err := web.NewServer(cfg, userService, configService)
	if err != nil {
		discordBot.Close()
		return fmt.Errorf("failed to initialize admin console: %w", err)
	}
	webErr := make(chan error, 1)
	go func() {
		webErr <- webServer.Start()
	}()

	log.Infof("Croupier is running in %s mode", cfg.Environment)

	select {
	case <-ctx.Done():
	case err := <-webErr:
		if err != nil {
			log.Errorf("Admin console stopped: %v", err)
		}
	}

	// Cleanup resources
	log.Info("Shutting down...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := webServer.Stop(shutdownCtx); err != nil {
		log.Errorf("Error stopping admin console: %v", err)
	}

	log.Info("Closing database connection...")
	db.Close()

	log.Info("Shutdown completed")
	return nil
}
