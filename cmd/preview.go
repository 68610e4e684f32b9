package cmd

import (
	"fmt"

	"capsection/internal/manufacturing"
	"capsection/internal/preview"
	"capsection/pkg/logging"

	"github.com/spf13/cobra"
)

type previewOptions struct {
	width       int
	interactive bool
}

func newPreviewCmd() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the capabilities section in the terminal",
		Long: `Lays the capabilities section out in the terminal: header, index
strip, capability cards and call to action.

With --interactive the preview opens full screen; tab and shift+tab move the
highlight between cards, the arrow keys scroll and q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", preview.DefaultWidth, "Layout width in columns")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Open a scrollable full-screen preview")
	return cmd
}

func runPreview(cmd *cobra.Command, opts *previewOptions) error {
	a, err := newApplication(cmd)
	if err != nil {
		return err
	}
	v := manufacturing.NewRenderer().View(a.Config().Section.Props())
	logging.Debug("Preview", "Previewing %s", preview.Summary(v))

	if !opts.interactive {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), preview.Render(v, preview.Options{Width: opts.width, Focus: -1}))
		return err
	}

	// Log lines would corrupt the alternate screen.
	logging.InitForInteractive(a.Settings().LogLevel(), nil)
	if _, err := preview.NewProgram(v, opts.width).Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
