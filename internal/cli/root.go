package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/cplx/internal/config"
	"github.com/roach88/cplx/internal/display"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Mode    string // see display.ModeNames
	Degrees bool
	Locale  string

	// Resolved in PersistentPreRunE.
	DisplayMode    display.Mode
	DisplayOptions display.Options
	Logger         *slog.Logger

	configErr error
}

// NewRootCommand creates the root command for the cplx CLI.
// Flag defaults come from the CPLX_* environment variables.
func NewRootCommand() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	opts := &RootOptions{configErr: err}

	cmd := &cobra.Command{
		Use:   "cplx",
		Short: "cplx - complex number toolkit",
		Long:  "Arithmetic, polar queries, integer powers and formatted display of complex numbers.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd.ErrOrStderr())
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Mode, "mode", cfg.Mode, fmt.Sprintf("display mode %v", display.ModeNames()))
	cmd.PersistentFlags().BoolVar(&opts.Degrees, "degrees", cfg.Degrees, "render angle mode in degrees")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", cfg.Locale, "BCP 47 locale for number output (empty for plain)")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewPowerCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// resolve validates the flags and builds the display settings and logger.
func (o *RootOptions) resolve(errw io.Writer) error {
	if o.configErr != nil {
		return WrapExitError(ExitCommandError, "invalid environment", o.configErr)
	}

	cfg := config.Config{Mode: o.Mode, Degrees: o.Degrees, Locale: o.Locale}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}
	mode, err := cfg.DisplayMode()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}
	dopts, err := cfg.DisplayOptions()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}
	o.DisplayMode = mode
	o.DisplayOptions = dopts
	o.Logger = newLogger(o.Verbose, errw)

	o.Logger.Debug("display settings", "mode", mode, "degrees", dopts.Degrees, "locale", o.Locale)
	return nil
}

// newLogger returns a debug-level text logger on errw when verbose, and a
// discarding logger otherwise.
func newLogger(verbose bool, errw io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(errw, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// logger returns the resolved logger, or a discarding one when the command
// ran without PersistentPreRunE.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return newLogger(false, nil)
	}
	return o.Logger
}
