// @title         watchdate API
// @version       0.1.0
// @description   Decodes watch serial numbers into candidate manufacturing dates

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"watchdate/internal/core/version"
	"watchdate/internal/platform/config"
	"watchdate/internal/platform/logger"
	phttp "watchdate/internal/platform/net/http"

	"watchdate/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = version.Service
	}
	logger.Init(opt)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.OptionsFromConfig(root))

	l.Info().Str("version", version.Info().Version).Msg("watchdate api starting")
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
