package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. Called
// by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the noticecheck CLI. Errors are returned to the caller
// (which maps them to a non-zero exit code) after the command has printed
// its operator-facing diagnostic.
func Execute(ctx context.Context) error {
	var (
		update  bool
		verbose bool
	)

	root := &cobra.Command{
		Use:   "noticecheck",
		Short: "noticecheck verifies the third-party license notices file",
		Long: `noticecheck cross-references the Maven artifacts declared in MODULE.bazel
with their upstream pom/gradle build descriptors, fetches each dependency's
license text from GitHub, and verifies that the aggregated
THIRD_PARTY_NOTICES file is up to date.

Without flags it runs in check mode and exits non-zero if the file would
change. With --update it regenerates the file in place.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), update)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("noticecheck %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVarP(&update, "update", "u", false, "update the notices file with the new content")

	return root.ExecuteContext(ctx)
}
