package cli

import (
	database "github.com/guipadovan/library-manager/internals/databases"

	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Create or update tables and indexes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			database.ConnectDB()
			defer database.Close(database.DB)
			return database.Migrate(database.DB)
		},
	}
}
