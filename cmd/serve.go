package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hoplog/hoplog/configs"
	"github.com/hoplog/hoplog/pkg/auth"
	"github.com/hoplog/hoplog/pkg/repository"
	"github.com/hoplog/hoplog/pkg/revalidate"
	"github.com/hoplog/hoplog/pkg/server"
	"github.com/hoplog/hoplog/pkg/storage"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".hoplog.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	signaler := revalidate.NewClient(conf, logger)
	defer signaler.Close() //nolint:errcheck // nothing to do about close errors on shutdown

	store, err := storage.NewClient(conf)
	if err != nil {
		logger.Error("error connecting to object storage", zap.Error(err))

		return err
	}

	authManager := auth.NewAuthManager(conf, repo, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	server.RegisterRoutes(e, authManager,
		server.NewSubmissionServer(repo, signaler, logger),
		server.NewModerationServer(repo, signaler, logger),
		server.NewCatalogServer(repo, signaler, store, conf, logger),
		server.NewReviewServer(repo, logger))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(e)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("starting server", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	return corsOpts.Handler(handler)
}
