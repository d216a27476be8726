// Package cli provides the command-line interface for swatchgen.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatchgen/internal/compression"
	"github.com/jmylchreest/swatchgen/internal/swatch"
	"github.com/jmylchreest/swatchgen/internal/theme"
	"github.com/jmylchreest/swatchgen/internal/version"
)

// EnvOutputDir overrides the default output directory.
const EnvOutputDir = "SWATCHGEN_OUTPUT_DIR"

// options holds the flag values shared by the command tree.
type options struct {
	verbose   bool
	quiet     bool
	outputDir string
	themes    []string
	bundle    string
}

// NewRootCmd builds the swatchgen command tree.
// Run without arguments it renders every built-in theme into the current
// directory.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "swatchgen",
		Short: "Render striped colour swatches for the built-in themes",
		Long: `swatchgen renders a 256x32 PNG swatch for each built-in theme.

Each swatch is four nested vertical stripes, outer border first, drawn from
the theme's four colours. Files are named <theme>.png and are overwritten
on every run.

Examples:
  # Render every theme into the current directory
  swatchgen

  # Render two themes into ./assets and bundle them
  swatchgen -d assets -t scarlet -t hyacinth --bundle assets/swatches.tar.xz

  # Check previously rendered swatches
  swatchgen verify assets`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringSliceVarP(&opts.themes, "theme", "t", nil, "themes to process (repeatable, default all)")
	registerRenderFlags(rootCmd.Flags(), opts)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newVerifyCmd(opts))

	return rootCmd
}

// registerRenderFlags adds the flags that only apply to rendering.
func registerRenderFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.outputDir, "output-dir", "d", defaultOutputDir(),
		fmt.Sprintf("directory to write swatches to (env %s)", EnvOutputDir))
	fs.StringVar(&opts.bundle, "bundle", "", "also write the rendered swatches to this .tar.xz archive")
}

// defaultOutputDir returns $SWATCHGEN_OUTPUT_DIR, or the current directory.
func defaultOutputDir() string {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		return dir
	}
	return "."
}

// newLogger returns the CLI logger writing to w.
func newLogger(w io.Writer, opts *options) hclog.Logger {
	level := hclog.Info
	switch {
	case opts.quiet:
		level = hclog.Off
	case opts.verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatchgen",
		Output: w,
		Level:  level,
	})
}

// runRender executes the root command.
func runRender(cmd *cobra.Command, opts *options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts)

	themes, err := theme.Select(opts.themes)
	if err != nil {
		return err
	}

	gen := swatch.NewGenerator(opts.outputDir, logger)
	paths, err := gen.Generate(cmd.Context(), themes)
	if err != nil {
		return fmt.Errorf("failed to render swatches: %w", err)
	}
	logger.Info("rendered swatches", "dir", gen.OutputDir(), "count", len(paths))

	if opts.bundle != "" {
		if err := compression.WriteTarXz(opts.bundle, paths); err != nil {
			return err
		}
		logger.Info("wrote bundle", "path", opts.bundle, "swatches", len(paths))
	}

	return nil
}

// newVersionCmd returns the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
