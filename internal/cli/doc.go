// Package cli implements the cplx command tree.
//
// Commands:
//
//	cplx demo            sample walkthrough on c1 = (5, 2), c2 = (4, 5)
//	cplx show            display one value given by --re/--im
//	cplx power           raise a value to the integer power -n
//	cplx test            run YAML conformance scenarios
//
// Global flags --mode, --degrees and --locale default to the CPLX_DISPLAY_MODE,
// CPLX_DISPLAY_DEGREES and CPLX_LOCALE environment variables. Failures are
// returned as *ExitError; GetExitCode maps them to process exit codes.
package cli
