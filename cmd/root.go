package cmd

import (
	"context"
	"os"

	"capsection/internal/app"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every command.
var (
	configPath  string
	configMap   string
	kubeContext string
	debug       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "capsection",
	Short: "Render and serve the manufacturing capabilities section",
	Long: `capsection renders the "Manufacturing Capabilities" marketing section
as HTML, serves it over HTTP, previews it in the terminal and exposes it to
AI assistants as MCP tools.

Content comes from layered YAML configuration (~/.config/capsection and
./.capsection), an explicit --config file or a Kubernetes ConfigMap.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration)
	SilenceUsage: true,
}

const versionTemplate = `{{printf "capsection version %s\n" .Version}}`

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(versionTemplate)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps logging and configuration from the persistent
// flags.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(configPath, configMap, debug)
	cfg.KubeContext = kubeContext
	return app.NewApplication(commandContext(cmd), cfg)
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: layered ~/.config/capsection and ./.capsection)")
	rootCmd.PersistentFlags().StringVar(&configMap, "configmap", "", "Load configuration from a Kubernetes ConfigMap (namespace/name)")
	rootCmd.PersistentFlags().StringVar(&kubeContext, "kube-context", "", "Kubeconfig context used with --configmap")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMCPCmd())
}
