package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/daily-motivation/internal/bootstrap"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
)

// cli carries the global flags and the application wired for the
// running command.
type cli struct {
	profile   string
	configDir string
	env       string
	verbose   bool

	// opts is handed to bootstrap.New. Tests swap the clock and randomness.
	opts bootstrap.Options

	app *bootstrap.App
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "motivate",
		Short: "Daily motivational quotes in your terminal",
		Long: `motivate fetches motivational quotes from public quote services,
keeps a quote of the day per profile and manages favorites and display
preferences in the same store the HTTP service uses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.teardown()
		},
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "local"
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.profile, "profile", "p", domain.DefaultProfile, "profile whose preferences are used")
	flags.StringVar(&c.configDir, "config-dir", config.DefaultDir, "directory holding base.yaml and profile files")
	flags.StringVar(&c.env, "env", env, "configuration profile to load (local, dev, qa, prod, test)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newQuoteCmd(c),
		newTodayCmd(c),
		newFavoritesCmd(c),
		newPrefsCmd(c),
		newCategoriesCmd(c),
		newProvidersCmd(c),
	)

	return root
}

// setup loads configuration and wires the application. Log output goes to
// stderr so stdout carries only rendered quotes.
func (c *cli) setup(cmd *cobra.Command) error {
	if err := domain.ValidateProfile(c.profile); err != nil {
		return err
	}

	cfg, err := config.LoadFrom(c.configDir, c.env)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   level,
		Format:  "pretty",
		Service: "motivate",
		Version: cfg.App.Version,
	}, cmd.ErrOrStderr())

	opts := c.opts
	if opts.Registerer == nil {
		opts.Registerer = prometheus.NewRegistry()
	}

	opts.WatchCatalog = false

	c.app, err = bootstrap.New(cmd.Context(), cfg, logger, opts)
	if err != nil {
		return fmt.Errorf("wiring application: %w", err)
	}

	return nil
}

func (c *cli) teardown() error {
	if c.app == nil {
		return nil
	}

	err := c.app.Close()
	c.app = nil

	return err
}
