package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/cplx/internal/display"
	"github.com/roach88/cplx/internal/numeric"
)

// PowerOptions holds flags for the power command.
type PowerOptions struct {
	ValueOptions
	Exponent int
}

// NewPowerCommand creates the power command.
func NewPowerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PowerOptions{ValueOptions: ValueOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "power",
		Short: "Raise a complex value to an integer power",
		Long: `Raise a complex value to an integer power by repeated squaring.

Negative exponents return the reciprocal of the positive power. A zero base
with a negative exponent fails with a division-by-zero error (exit code 1).

Example:
  cplx power --re 1 --im 1 -n 4
  cplx power --re 5 --im 2 -n -2 --mode exp`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := opts.value()
			opts.logger().Debug("power", "real", base.Real(), "imag", base.Imag(), "n", opts.Exponent)

			p, err := numeric.Power(base, opts.Exponent)
			if err != nil {
				return WrapExitError(ExitFailure, "power failed", err)
			}
			return display.Fprint(cmd.OutOrStdout(), cmd.ErrOrStderr(), p, opts.DisplayMode, opts.DisplayOptions)
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVarP(&opts.Exponent, "exponent", "n", 0, "integer exponent")

	return cmd
}
