package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EO-DataHub/eodhp-posts-filter/api/handlers"
	"github.com/EO-DataHub/eodhp-posts-filter/api/middleware"
	"github.com/EO-DataHub/eodhp-posts-filter/api/router"
	"github.com/EO-DataHub/eodhp-posts-filter/internal/appconfig"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server that renders the posts view",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		if cmd.Flags().Changed("host") {
			appCfg.Host = host
		}
		if cmd.Flags().Changed("port") {
			appCfg.Port = port
		}

		r := buildRouter(appCfg, handlers.PostsView(newPostsService(appCfg), viewBasePath(appCfg)))

		addr := fmt.Sprintf("%s:%d", appCfg.Host, appCfg.Port)
		srv := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("could not shut down server")
			}
		}()

		log.Info().Str("router", appCfg.RouterVariant).Msg(fmt.Sprintf("Server started at %s", addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("could not start server")
		}
		log.Info().Msg("Server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

// buildRouter picks the route table for the configured variant and wires the
// logger and navigation guard in front of the view.
func buildRouter(cfg *appconfig.Config, view http.Handler) *mux.Router {
	if cfg.RouterVariant == appconfig.RouterPlain {
		return router.New(router.Routes(), "", view, middleware.WithLogger, router.BeforeEach)
	}

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = router.DefaultBasePath
	}
	return router.New(router.BasePathRoutes(), basePath, view, middleware.WithLogger, router.BeforeEach)
}

// viewBasePath is the prefix the view uses for its links.
func viewBasePath(cfg *appconfig.Config) string {
	if cfg.RouterVariant == appconfig.RouterPlain {
		return ""
	}
	if cfg.BasePath == "" {
		return router.DefaultBasePath
	}
	return cfg.BasePath
}
