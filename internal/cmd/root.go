package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"eshop-fixtures/internal/config"
	"eshop-fixtures/internal/fixture"
	"eshop-fixtures/internal/logger"
	"eshop-fixtures/internal/render"
	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	out       io.Writer
	cfg       config.Config
	log       *logger.Logger
	orderDate string
}

// NewRootCommand builds the eshop command tree. Rendered output goes to out;
// a nil log means one is built from LOG_MODE when a command runs.
func NewRootCommand(out io.Writer, log *logger.Logger) *cobra.Command {
	a := &app{out: out, log: log}

	root := &cobra.Command{
		Use:   "eshop",
		Short: "Demo e-commerce fixtures: build, render, persist and serve",
		Long: `eshop fabricates a small, deterministic e-commerce data set (catalog,
orders, buyers, payment methods and baskets) and prints it as JSON.

Subcommands render it in other formats, persist it to Postgres and serve it
over a read-only HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Name())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(render.FormatJSON)
		},
	}
	root.PersistentFlags().StringVar(&a.orderDate, "order-date", "", "RFC 3339 instant stamped on orders (default: now)")

	root.AddCommand(
		newDumpCommand(a),
		newMigrateCommand(a),
		newSeedCommand(a),
		newImportCommand(a),
		newServeCommand(a),
	)
	return root
}

// Execute runs the root command against the process streams.
func Execute() {
	if err := NewRootCommand(os.Stdout, nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) init(name string) error {
	a.cfg = config.FromEnv()
	if a.log == nil {
		log, err := logger.New(a.cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		a.log = log
	}
	a.log = a.log.Named(name)
	return nil
}

func (a *app) buildOptions() ([]fixture.Option, error) {
	if a.orderDate == "" {
		return nil, nil
	}
	at, err := time.Parse(time.RFC3339, a.orderDate)
	if err != nil {
		return nil, fmt.Errorf("parse --order-date: %w", err)
	}
	return []fixture.Option{fixture.WithClock(func() time.Time { return at.UTC() })}, nil
}

func (a *app) bundle() (fixture.Bundle, error) {
	opts, err := a.buildOptions()
	if err != nil {
		return fixture.Bundle{}, err
	}
	b := fixture.Build(opts...)
	a.log.Debug("bundle built", b.Summary().KeysAndValues()...)
	return b, nil
}

func (a *app) render(format render.Format) error {
	b, err := a.bundle()
	if err != nil {
		return err
	}
	if err := render.Write(a.out, b, format); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}
