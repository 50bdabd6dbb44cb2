package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	jobControllers "github.com/zosjobs/jobs-gateway/api/v1/controllers/jobs"
	jobApi "github.com/zosjobs/jobs-gateway/api/v1/jobs"
	_ "github.com/zosjobs/jobs-gateway/docs"
	"github.com/zosjobs/jobs-gateway/models"
	"github.com/zosjobs/jobs-gateway/pkg/connector"
	"github.com/zosjobs/jobs-gateway/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := models.NewConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	initLogger(cfg)

	handler, err := getJobHandler(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create job handler")
	}

	runApiServer(cfg, handler)
}

func initLogger(cfg *models.Config) {
	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	zerolog.DurationFieldUnit = time.Millisecond
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	zerolog.DefaultContextLogger = &log.Logger
	log.Info().Msgf("Log level: %s", logLevel)
}

func getJobHandler(cfg *models.Config) (jobApi.JobHandler, error) {
	conn, err := connector.NewHTTPConnector(connector.Config{
		BaseURL:            cfg.ZosmfURL,
		Timeout:            cfg.ZosmfTimeout,
		InsecureSkipVerify: cfg.ZosmfInsecure,
	}, getAuthenticator(cfg))
	if err != nil {
		return nil, err
	}
	return jobApi.New(conn, cfg.SubmitOptions())
}

func getAuthenticator(cfg *models.Config) connector.Authenticator {
	switch {
	case cfg.ZosmfToken != "":
		log.Info().Msg("Authenticate to z/OSMF with bearer token")
		return connector.NewStaticTokenAuth(cfg.ZosmfToken)
	case cfg.ZosmfUsername != "":
		log.Info().Msgf("Authenticate to z/OSMF as %s", cfg.ZosmfUsername)
		return connector.BasicAuth{Username: cfg.ZosmfUsername, Password: cfg.ZosmfPassword}
	default:
		log.Warn().Msg("No z/OSMF credentials configured")
		return connector.NoAuth{}
	}
}

func runApiServer(cfg *models.Config, handler jobApi.JobHandler) {
	fs := initializeFlagSet()
	var (
		port = fs.StringP("port", "p", cfg.Port, "Port where API will be served")
	)
	parseFlagsFromArgs(fs)
	log.Debug().Msgf("Port: %s", *port)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", *port),
		Handler:           router.NewServer(jobControllers.New(handler)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errsChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("Jobs gateway API is serving on port %s", *port)
		errsChan <- server.ListenAndServe()
	}()

	sigTerm := make(chan os.Signal, 1)
	signal.Notify(sigTerm, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-sigTerm:
		log.Info().Msg("Shutting down jobs gateway API")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Jobs gateway API shutdown failed")
		}
	case err := <-errsChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Jobs gateway API server crashed")
		}
	}
}

func initializeFlagSet() *pflag.FlagSet {
	// Flag domain.
	fs := pflag.NewFlagSet("default", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "DESCRIPTION\n")
		fmt.Fprint(os.Stderr, "z/OS jobs gateway API server.\n")
		fmt.Fprint(os.Stderr, "\n")
		fmt.Fprint(os.Stderr, "FLAGS\n")
		fs.PrintDefaults()
	}
	return fs
}

func parseFlagsFromArgs(fs *pflag.FlagSet) {
	err := fs.Parse(os.Args[1:])
	switch {
	case errors.Is(err, pflag.ErrHelp):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err.Error())
		fs.Usage()
		os.Exit(2)
	}
}
