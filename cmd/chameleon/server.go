package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pastelpanda/chameleon/internal/config"
	"github.com/pastelpanda/chameleon/internal/db"
	"github.com/pastelpanda/chameleon/internal/handlers"
	"github.com/pastelpanda/chameleon/internal/models"
	"github.com/pastelpanda/chameleon/internal/store"
	"github.com/pastelpanda/chameleon/internal/themeapi"
	"github.com/pastelpanda/chameleon/internal/tokens"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the chameleon HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		setupLogger(config.GetString("server.environment"))

		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// The one owned output surface every other screen reads from
		surface := tokens.NewStyleSurface()
		publisher := tokens.NewPublisher(surface)
		modes := store.NewPreferenceModeStore(db.GetDB())

		organization := config.GetString("engine.organization")
		interval := config.GetDuration("engine.refresh_interval")

		// Local mode reads the theme straight from our own database;
		// agent mode follows a remote chameleon service instead
		var fetcher store.Fetcher
		if remote := config.GetString("engine.remote_url"); remote != "" {
			fetcher = themeapi.New(remote)
			log.Info().Str("remote", remote).Msg("following remote configuration service")
		} else {
			fetcher = localFetcher(db.GetDB(), organization)
		}

		engine := store.New(fetcher, modes, publisher, interval, log.Logger)
		if err := engine.Start(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting theme engine: %v\n", err)
			os.Exit(1)
		}
		defer engine.Stop()

		r := gin.Default()

		r.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"service": "chameleon",
			})
		})

		r.GET("/theme.css", handlers.ThemeCSS(surface))

		api := r.Group("/api")
		{
			api.GET("/customization/current", handlers.GetCurrentCustomization)
			api.GET("/customization/display-mode", handlers.GetDisplayMode(engine))
			api.POST("/customization/display-mode/toggle", handlers.ToggleDisplayMode(engine))
			api.GET("/customization/suggest-text", handlers.SuggestTextColor)
			api.GET("/engine/status", handlers.EngineStatus(engine, surface))

			admin := api.Group("/admin/customization")
			{
				admin.GET("", handlers.GetCurrentCustomization)
				admin.PUT("", handlers.UpdateCustomization(engine))
				admin.POST("/validate", handlers.ValidateCustomization)
				admin.POST("/reset", handlers.ResetCustomization(engine))
				admin.GET("/presets", handlers.GetThemePresets)
				admin.POST("/apply-preset", handlers.ApplyThemePreset(engine))
				admin.GET("/export", handlers.ExportCustomization)
			}
		}

		httpPort := config.GetString("server.http_port")
		httpAddr := fmt.Sprintf(":%s", httpPort)
		log.Info().Str("addr", httpAddr).Msg("starting HTTP server")
		if err := r.Run(httpAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

// setupLogger configures zerolog; development gets the console writer
func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// localFetcher reads the organization's theme from our own database,
// falling back to the factory theme when no row exists yet
func localFetcher(database *gorm.DB, organization string) store.FetcherFunc {
	return func(ctx context.Context) (*models.ThemeRecord, error) {
		var cust models.Customization
		err := database.WithContext(ctx).First(&cust, "organization_name = ?", organization).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewDefaultCustomization(organization).Record(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("load customization: %w", err)
		}
		return cust.Record(), nil
	}
}

// initSystemDB opens the configured database and runs migrations
func initSystemDB() error {
	return db.InitDB(config.GetString("database.type"), config.GetString("database.path"))
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
