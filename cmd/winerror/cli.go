package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"icatest/internal/app"
	"icatest/internal/config"
	apperrors "icatest/internal/errors"
	"icatest/internal/errors/logging"
	"icatest/internal/logger"
)

const version = "0.1.0"

type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string
	noColor    bool
	hex        bool

	logger logger.Logger
	app    *app.App
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{stdout: stdout, stderr: stderr}
}

// execute runs the command line and returns the error that decides the exit status.
func (c *cli) execute(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}

	if c.logger == nil {
		c.logger = logger.NewColoredLogger(logger.WithOutput(c.stderr))
	}

	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.SystemError("command failed", err).WithCode(apperrors.CodeOf(err))
	}
	if appErr.Operation == "" {
		appErr.WithOperation(cmd.Name())
	}
	logging.Error(cmd.Context(), c.logger, appErr.Message, appErr)
	return appErr
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "winerror",
		Short:         "Look up Windows system error codes",
		Long:          "Resolve Windows system error code names and values. The exit status is the code of the failure.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to a YAML or TOML config file (default $"+config.EnvConfigPath+")")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&c.logFormat, "log-format", "", "Log format (text, json, json-pretty)")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable coloured output")
	flags.BoolVar(&c.hex, "hex", false, "Show values in hexadecimal as well")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.UsageError("invalid flag", err)
	})

	root.AddCommand(
		&cobra.Command{
			Use:     "lookup NAME...",
			Short:   "Print the value of one or more error code names",
			Example: "  winerror lookup ERROR_ALREADY_EXISTS busy",
			Args:    atLeastOne("name"),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Lookup(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:     "name VALUE...",
			Short:   "Print the names bound to one or more values",
			Example: "  winerror name 183 0xE6",
			Args:    atLeastOne("value"),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Name(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Print the full error code table",
			Args:  noArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.List(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "browse",
			Short: "Search the table interactively",
			Args:  noArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Browse(cmd.Context())
			},
		},
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(c.configPath)
	if err != nil {
		return apperrors.ConfigError("failed to load configuration", err).WithModule("cli")
	}

	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.logFormat != "" {
		cfg.Log.Format = c.logFormat
	}
	if c.noColor {
		cfg.Output.Color = string(logger.ColorNever)
	}
	if c.hex {
		cfg.Output.Hex = true
	}
	if err := cfg.Validate(); err != nil {
		return apperrors.UsageError("invalid option", err).WithModule("cli")
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return apperrors.ConfigError("invalid log level", err).WithModule("cli")
	}

	log, err := logger.New(logger.Settings{
		Name:    "winerror",
		Backend: cfg.Log.Backend,
		Level:   level,
		Format:  cfg.Log.Format,
		Color:   logger.ColorMode(strings.ToLower(cfg.Output.Color)),
		Output:  c.stderr,
		Caller:  cfg.Log.Caller,
	})
	if err != nil {
		return apperrors.ConfigError("invalid log backend", err).WithModule("cli")
	}
	c.logger = log

	ctx := logger.ContextWithInvocation(cmd.Context(), logger.Invocation{
		ID:      uuid.NewString(),
		Command: cmd.Name(),
	})
	cmd.SetContext(ctx)

	c.logger.DebugContext(ctx, "configuration loaded", logger.String("config", c.configPath))
	c.app = app.New(cfg, c.logger, c.stdout)
	return nil
}

func atLeastOne(what string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return apperrors.UsageError(fmt.Sprintf("at least one %s is required", what), nil)
		}
		return nil
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return apperrors.UsageError(fmt.Sprintf("%s takes no arguments", cmd.Name()), nil)
	}
	return nil
}
