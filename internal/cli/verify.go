package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchgen/internal/compression"
	imageloader "github.com/jmylchreest/swatchgen/internal/image"
	"github.com/jmylchreest/swatchgen/internal/swatch"
	"github.com/jmylchreest/swatchgen/internal/theme"
)

// ErrVerifyFailed is returned when one or more swatches fail verification.
var ErrVerifyFailed = errors.New("swatch verification failed")

func newVerifyCmd(opts *options) *cobra.Command {
	var bundle string

	cmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check rendered swatches against the built-in themes",
		Long: `Check that each <theme>.png in dir (default: the output directory) is a
256x32 PNG whose stripe colours match its theme.

With --bundle, also check that the archive contains every swatch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultOutputDir()
			if len(args) == 1 {
				dir = args[0]
			}
			return runVerify(cmd, opts, dir, bundle)
		},
	}

	cmd.Flags().StringVar(&bundle, "bundle", "", "also check the contents of this .tar.xz archive")

	return cmd
}

func runVerify(cmd *cobra.Command, opts *options, dir, bundle string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts).Named("verify")
	out := cmd.OutOrStdout()

	themes, err := theme.Select(opts.themes)
	if err != nil {
		return err
	}

	var loader imageloader.Loader = imageloader.NewFileLoader()
	failed := 0
	for _, t := range themes {
		path := filepath.Join(dir, t.Filename())
		logger.Debug("checking swatch", "theme", t.Name, "path", path)

		if err := verifyFile(loader, path, t); err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", path, err)
			continue
		}
		if !opts.quiet {
			fmt.Fprintf(out, "✓ %s\n", path)
		}
	}

	if bundle != "" {
		names, err := compression.ListTarXz(bundle)
		if err != nil {
			return err
		}
		for _, t := range themes {
			if !slices.Contains(names, t.Filename()) {
				failed++
				fmt.Fprintf(out, "✗ %s: missing %s\n", bundle, t.Filename())
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d problem(s)", ErrVerifyFailed, failed)
	}
	return nil
}

func verifyFile(loader imageloader.Loader, path string, t theme.Theme) error {
	img, format, err := loader.Load(path)
	if err != nil {
		return err
	}
	if format != "png" {
		return fmt.Errorf("%w: format %s, want png", swatch.ErrMismatch, format)
	}
	return swatch.Verify(img, t)
}
