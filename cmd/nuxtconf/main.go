// nuxtconf resolves the application configuration exactly as the server
// would and prints it. The backend-service key is masked unless
// --show-secrets is given.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		format      string
		showSecrets bool
		envFiles    []string
		logLevel    string
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("nuxtconf", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&format, "format", "o", formatTable, "output format: table, json or yaml")
	flagSet.BoolVar(&showSecrets, "show-secrets", false, "print the supabase key instead of masking it")
	flagSet.StringSliceVar(&envFiles, "env-file", nil, "dotenv file layered under the environment (repeatable)")
	flagSet.StringVar(&logLevel, "log-level", "warn", "log level for diagnostics on stderr")
	flagSet.BoolVar(&showVersion, "version", false, "print build information and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	if showVersion {
		printBuildInfo(stdout)
		return nil
	}

	log := logger.NewConsoleLogger("nuxtconf", stderr, logger.ParseLevel(logLevel))
	cfg := config.NewResolver(config.WithDotenv(envFiles...), config.WithLogger(log)).Resolve()
	if !showSecrets {
		cfg = cfg.Redacted()
	}

	if cfg.Supabase.URL == "" || cfg.Supabase.Key == "" {
		log.Warn().Msg("SUPABASE_URL or SUPABASE_KEY is empty; the server will refuse to start")
	}

	return render(stdout, cfg, format)
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
