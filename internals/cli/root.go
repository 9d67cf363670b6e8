package cli

import (
	"log"
	"os"

	"github.com/guipadovan/library-manager/internals/configs"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the librarymanager command tree. Without a subcommand it serves HTTP.
func NewRootCommand() *cobra.Command {
	serveOpts := &ServeOptions{AutoMigrate: true}

	cmd := &cobra.Command{
		Use:   "librarymanager",
		Short: "Library Manager - books, users, leases and recommendations",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.LoadEnv()
			if err := dbtime.SetLocation(configs.AppTimezone); err != nil {
				log.Printf("[WARN] APP_TIMEZONE %q not loaded, using UTC: %v", configs.AppTimezone, err)
			}
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), serveOpts)
		},
	}

	cmd.AddCommand(NewServeCommand(serveOpts))
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewSeedCommand())
	cmd.AddCommand(NewSearchBooksCommand())
	cmd.AddCommand(NewAdminTokenCommand())

	return cmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
