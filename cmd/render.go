package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"capsection/internal/manufacturing"
	"capsection/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	page   bool
	out    string
	copy   bool
	year   int
	writer func(string) error
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{writer: clipboard.WriteAll}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the capabilities section as HTML",
		Long: `Renders the configured capabilities section to standard output.

By default only the <section> fragment is written, ready to be embedded in
an existing page. Use --page for a standalone HTML document that loads the
Tailwind stylesheet, --out to write to a file and --copy to also place the
result on the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.page, "page", false, "Render a complete HTML document instead of the section fragment")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the output to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the output to the clipboard")
	cmd.Flags().IntVar(&opts.year, "year", 0, "Render references for this year instead of the current one")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	a, err := newApplication(cmd)
	if err != nil {
		return err
	}
	cfg := a.Config()

	var rendererOpts []manufacturing.Option
	if opts.year > 0 {
		year := opts.year
		rendererOpts = append(rendererOpts, manufacturing.WithClock(func() time.Time {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		}))
	}
	renderer := manufacturing.NewRenderer(rendererOpts...)

	var buf bytes.Buffer
	if opts.page {
		err = renderer.RenderPage(&buf, cfg.Section.Props(), cfg.Page.PageOptions())
	} else {
		err = renderer.Render(&buf, cfg.Section.Props())
	}
	if err != nil {
		return fmt.Errorf("failed to render section: %w", err)
	}
	buf.WriteString("\n")

	if opts.out != "" {
		if err := os.WriteFile(opts.out, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.out, err)
		}
		logging.Info("Render", "Wrote %d bytes to %s", buf.Len(), opts.out)
	} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if opts.copy {
		if err := opts.writer(buf.String()); err != nil {
			logging.Error("Render", err, "Failed to copy output to clipboard")
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		logging.Info("Render", "Copied output to clipboard")
	}
	return nil
}
