package app

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"icatest/internal/config"
	apperrors "icatest/internal/errors"
	"icatest/internal/logger"
	"icatest/internal/menu"
	"icatest/internal/ui"
	"icatest/internal/winerror"
)

const module = "app"

// App implements the winerror commands.
type App struct {
	logger  logger.Logger
	printer *ui.Printer

	interactive func() bool
	browse      func([]winerror.Info) (winerror.Info, error)
}

// New builds an App writing results to out. The interactive picker always
// talks to the process terminal.
func New(cfg *config.Config, log logger.Logger, out io.Writer) *App {
	return &App{
		logger: log,
		printer: ui.NewPrinter(out, logger.ColorMode(strings.ToLower(cfg.Output.Color)),
			ui.WithHex(cfg.Output.Hex),
			ui.WithDescriptions(cfg.Output.ShowDescriptions()),
		),
		interactive: func() bool {
			return logger.IsTerminal(os.Stdin) && logger.IsTerminal(os.Stdout)
		},
		browse: func(infos []winerror.Info) (winerror.Info, error) {
			return menu.NewBrowser(infos, nil, nil).Run()
		},
	}
}

// Lookup prints the value of every name. All names are attempted; unknown
// ones fail the command with ERROR_INVALID_PARAMETER.
func (a *App) Lookup(ctx context.Context, names []string) error {
	var missing []string
	for _, name := range names {
		code, ok := winerror.Lookup(name)
		if !ok {
			a.printer.PrintMiss(name)
			missing = append(missing, name)
			continue
		}
		a.logger.DebugContext(ctx, "resolved name", logger.String("query", name), logger.Int("value", int(code)))
		a.printer.PrintValue(code.String(), code)
	}

	if len(missing) > 0 {
		return apperrors.ValidationError("undefined error code name", nil).
			WithOperation("lookup").
			WithModule(module).
			WithField("names", strings.Join(missing, ","))
	}
	return nil
}

// Name prints the names bound to each value. Values accept decimal or
// 0x-prefixed hexadecimal. All values are attempted; a malformed value
// outranks an unknown one when choosing the returned error.
func (a *App) Name(ctx context.Context, values []string) error {
	var (
		missing  []string
		parseErr error
	)
	for _, raw := range values {
		code, err := ParseValue(raw)
		if err != nil {
			a.printer.PrintMiss(raw)
			if parseErr == nil {
				parseErr = err
			}
			continue
		}

		names := winerror.Names(code)
		if len(names) == 0 {
			a.printer.PrintMiss(raw)
			missing = append(missing, raw)
			continue
		}
		a.logger.DebugContext(ctx, "resolved value", logger.Int("value", int(code)), logger.Int("matches", len(names)))
		a.printer.PrintNames(code, names)
	}

	if parseErr != nil {
		return parseErr
	}
	if len(missing) > 0 {
		return apperrors.NotFound("no error code with that value", nil).
			WithOperation("name").
			WithModule(module).
			WithField("values", strings.Join(missing, ","))
	}
	return nil
}

// List prints the whole table.
func (a *App) List(ctx context.Context) error {
	infos := winerror.All()
	a.logger.DebugContext(ctx, "listing error codes", logger.Int("count", len(infos)))
	a.printer.PrintTable(infos)
	return nil
}

// Browse runs the interactive picker and prints the chosen entry. Leaving
// the picker with Ctrl+C or Ctrl+D is not an error.
func (a *App) Browse(ctx context.Context) error {
	if !a.interactive() {
		return apperrors.ConfigError("browse requires an interactive terminal", nil).
			WithOperation("browse").
			WithModule(module)
	}

	info, err := a.browse(winerror.All())
	switch {
	case err == promptui.ErrInterrupt, err == promptui.ErrEOF:
		a.logger.DebugContext(ctx, "browse cancelled")
		return nil
	case err != nil:
		return apperrors.IOError("interactive prompt failed", err).
			WithOperation("browse").
			WithModule(module)
	}

	a.printer.PrintDetail(info)
	return nil
}

// ParseValue parses a decimal or 0x-prefixed hexadecimal code value. Leading
// zeros are decimal; octal, binary and underscore forms are rejected.
func ParseValue(raw string) (winerror.Code, error) {
	s := strings.TrimSpace(raw)
	base := 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, apperrors.FormatError("invalid error code value", err).
			WithOperation("parse").
			WithModule(module).
			WithField("value", raw)
	}
	return winerror.Code(v), nil
}
