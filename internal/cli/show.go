package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/cplx/internal/display"
	"github.com/roach88/cplx/internal/numeric"
)

// ValueOptions holds the real and imaginary part flags shared by show and
// power.
type ValueOptions struct {
	*RootOptions
	Real float64
	Imag float64
}

func (o *ValueOptions) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.Real, "re", 0, "real part")
	cmd.Flags().Float64Var(&o.Imag, "im", 0, "imaginary part")
}

func (o *ValueOptions) value() numeric.Complex128 {
	return numeric.New(o.Real, o.Imag)
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValueOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display one complex value",
		Long: `Display one complex value in the selected mode.

Example:
  cplx show --re 5 --im 2
  cplx show --re 3 --im 4 --mode angle --degrees`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.value()
			opts.logger().Debug("show", "real", c.Real(), "imag", c.Imag(), "mode", opts.DisplayMode)
			return display.Fprint(cmd.OutOrStdout(), cmd.ErrOrStderr(), c, opts.DisplayMode, opts.DisplayOptions)
		},
	}
	opts.bind(cmd)

	return cmd
}
