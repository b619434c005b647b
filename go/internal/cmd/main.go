// Command fetch-leagues requests the leagues of one country from API-Football
// and prints the raw response. With -persist the first league is upserted into
// Postgres.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mcdev12/pitchside/go/clients/football_api_client"
	"github.com/mcdev12/pitchside/go/internal/leagues"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultCountryCode = "za"

type options struct {
	code       string
	configPath string
	persist    bool
	logLevel   string
}

// storeFactory is swapped in tests.
var storeFactory = func(ctx context.Context) (leagues.LeagueStore, func(), error) {
	return setupStore(ctx)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("fetch-leagues", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.code, "code", defaultCountryCode, "country code to request leagues for")
	fs.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	fs.BoolVar(&opts.persist, "persist", false, "upsert the first league into Postgres")
	fs.StringVar(&opts.logLevel, "log-level", "", "zerolog level (default $LOG_LEVEL or info)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func setupLogging(level string, stderr io.Writer) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	var fileCfg *Config
	if opts.configPath != "" {
		fileCfg, err = loadConfig(opts.configPath)
		if err != nil {
			return fail(stdout, err)
		}
		if opts.logLevel == "" {
			opts.logLevel = fileCfg.LogLevel
		}
	}
	if opts.logLevel == "" {
		opts.logLevel = getEnv("LOG_LEVEL", "info")
	}

	if err := setupLogging(opts.logLevel, stderr); err != nil {
		return fail(stdout, err)
	}

	apiCfg, err := apiConfig(fileCfg)
	if err != nil {
		return fail(stdout, err)
	}

	client := football_api_client.NewFootballApiClient(apiCfg.ClientConfig())

	if !opts.persist {
		app := leagues.NewApp(client, nil)
		result, err := app.FetchByCountryCode(ctx, opts.code)
		if err != nil {
			return fail(stdout, err)
		}
		fmt.Fprintln(stdout, string(result.Raw))
		return 0
	}

	st, closeStore, err := storeFactory(ctx)
	if err != nil {
		return fail(stdout, err)
	}
	defer closeStore()

	app := leagues.NewApp(client, leagues.NewRepository(st))
	imported, err := app.ImportByCountryCode(ctx, opts.code)
	if err != nil {
		return fail(stdout, err)
	}

	fmt.Fprintln(stdout, string(imported.Raw))
	return 0
}

// fail prints the error object and returns the exit status.
func fail(stdout io.Writer, err error) int {
	body, marshalErr := json.Marshal(leagues.ErrorBody(err))
	if marshalErr != nil {
		body = []byte(`{"error":"internal error"}`)
	}
	fmt.Fprintln(stdout, string(body))

	var transportErr *leagues.TransportError
	if errors.As(err, &transportErr) {
		log.Error().Str("code", transportErr.Code).Err(transportErr.Err).Msg("could not reach API-Football")
	} else {
		log.Error().Err(err).Msg("fetch-leagues failed")
	}
	return 1
}
