package cmd

import (
	"fmt"

	"capsection/internal/config"
	"capsection/pkg/logging"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the release repository used when the configuration
// does not name one.
var githubRepoSlug = config.DefaultRepository

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update capsection to the latest version",
		Long: `Checks for the latest release of capsection on GitHub and
updates the current binary if a newer version is found.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	slug := githubRepoSlug
	if a, err := newApplication(cmd); err != nil {
		logging.Warn("SelfUpdate", "Using default repository %s: %v", slug, err)
	} else {
		slug = releaseRepository(a.Config())
	}

	ctx := commandContext(cmd)
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s could not be found in %s", currentVersion, slug)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Fprintf(cmd.OutOrStdout(), "Current version (%s) is the latest\n", currentVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated to version %s\n", latest.Version())
	return nil
}

// releaseRepository returns the owner/name slug releases are fetched from.
func releaseRepository(cfg config.CapsectionConfig) string {
	if repo := cfg.Update.Repository; repo != "" {
		return repo
	}
	return githubRepoSlug
}
