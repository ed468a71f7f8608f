/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/EO-DataHub/eodhp-posts-filter/api/services"
	"github.com/EO-DataHub/eodhp-posts-filter/internal/appconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	host       string
	port       int
	appCfg     *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "posts-filter",
	Short: "Posts Filter",
	Long:  `Posts Filter displays and filters the posts and users of a remote REST API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the config file")
}

// commonSetUp sets up logging and loads the config
func commonSetUp() {
	setLogging(logLevel)

	if configPath == "" {
		log.Debug().Msg("no config file given, using defaults")
		appCfg = appconfig.Default()
		return
	}

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}
}

func newPostsService(cfg *appconfig.Config) *services.PostsService {
	api := services.NewRestAPIService(cfg.API.BaseURL, time.Duration(cfg.API.Timeout))
	log.Info().Str("base_url", api.BaseURL).Msg("Using REST API")
	return services.NewPostsService(api)
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
