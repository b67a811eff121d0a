package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signup/pkg/clock"
	"github.com/dmitrymomot/signup/pkg/config"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/registration"
	"github.com/dmitrymomot/signup/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

type runIDKey struct{}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	clock  clock.Clock
}

type result struct {
	Index  int                      `json:"index"`
	Valid  bool                     `json:"valid"`
	Values *registration.FormValues `json:"values,omitempty"`
	Errors registration.FieldErrors `json:"errors,omitempty"`
}

func (a *app) run(args []string) int {
	fs := flag.NewFlagSet("signupcheck", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	format := fs.String("format", formatJSON, "input format: json, yaml or form")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage:")
		fmt.Fprintln(fs.Output(), "  signupcheck [-format json|yaml|form] [file]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(a.stderr, "signupcheck: %v\n", err)
		return exitUsage
	}
	loc, err := cfg.location()
	if err != nil {
		fmt.Fprintf(a.stderr, "signupcheck: %v\n", err)
		return exitUsage
	}
	logOpts, err := cfg.loggerOptions()
	if err != nil {
		fmt.Fprintf(a.stderr, "signupcheck: %v\n", err)
		return exitUsage
	}

	log := logger.New(append(logOpts,
		logger.WithOutput(a.stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)...)
	ctx := context.WithValue(context.Background(), runIDKey{}, uuid.NewString())

	data, err := a.readInput(fs.Arg(0))
	if err != nil {
		log.ErrorContext(ctx, "failed to read input", logger.Error(err))
		return exitUsage
	}

	records, err := decodeRecords(*format, data)
	if err != nil {
		log.ErrorContext(ctx, "failed to decode records", logger.Error(err))
		return exitUsage
	}

	v := registration.New(
		registration.WithClock(a.clock),
		registration.WithLocation(loc),
	)

	enc := json.NewEncoder(a.stdout)
	enc.SetEscapeHTML(false)

	invalid := 0
	for i, rec := range records {
		res := result{Index: i}

		values, err := v.Validate(rec)
		switch {
		case err == nil:
			res.Valid = true
			res.Values = &values
			log.DebugContext(ctx, "record is valid", logger.Record(i))
		case validator.IsValidationError(err):
			invalid++
			res.Errors = registration.ErrorMap(err)
			log.DebugContext(ctx, "record is invalid", logger.Record(i), logger.Fields(res.Errors.Fields()))
		default:
			log.ErrorContext(ctx, "failed to validate record", logger.Record(i), logger.Error(err))
			return exitUsage
		}

		if err := enc.Encode(res); err != nil {
			log.ErrorContext(ctx, "failed to write result", logger.Record(i), logger.Error(err))
			return exitUsage
		}
	}

	log.InfoContext(ctx, "records checked", logger.Count(len(records)), slog.Int("invalid", invalid))

	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

func (a *app) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(path)
}
