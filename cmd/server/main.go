package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/internal/handler"
	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/nuxt"
	"github.com/MKhiriev/shadbase/internal/server"
	"github.com/MKhiriev/shadbase/internal/workers"
	"github.com/MKhiriev/shadbase/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type flags struct {
	host        string
	port        int
	rootDir     string
	envFiles    []string
	checkHealth bool
}

func parseFlags(args []string) (flags, error) {
	var f flags

	flagSet := pflag.NewFlagSet("shadbase-server", pflag.ContinueOnError)
	flagSet.StringVar(&f.host, "host", "", "interface to listen on (overrides NUXT_HOST)")
	flagSet.IntVarP(&f.port, "port", "p", 0, "port to listen on (overrides NUXT_PORT)")
	flagSet.StringVar(&f.rootDir, "root", ".", "project root for stylesheets and components")
	flagSet.StringSliceVar(&f.envFiles, "env-file", nil, "dotenv file layered under the environment (repeatable)")
	flagSet.BoolVar(&f.checkHealth, "check-health", false, "call the supabase health endpoint at startup")

	return f, flagSet.Parse(args)
}

func main() {
	printBuildInfo()

	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewLogger("shadbase-server")

	resolver := config.NewResolver(config.WithDotenv(f.envFiles...), config.WithLogger(log))
	cfg := resolver.Resolve()
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	serverCfg, err := resolver.ResolveServer(config.Server{Host: f.host, Port: f.port})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting server configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	app, err := nuxt.Bootstrap(ctx, cfg, nuxt.Options{
		RootDir:             f.rootDir,
		CheckSupabaseHealth: f.checkHealth,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping application")
	}

	handlers, err := handler.NewHandlers(app, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *serverCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	watcher := workers.WorkerFunc(func(ctx context.Context) error {
		if err := app.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("component watcher stopped")
		}
		return nil
	})

	if err = workers.NewWorkers(workers.WorkerFunc(srv.RunServer), watcher).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
