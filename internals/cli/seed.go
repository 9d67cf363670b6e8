package cli

import (
	"fmt"

	database "github.com/guipadovan/library-manager/internals/databases"
	"github.com/guipadovan/library-manager/internals/seeds"

	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Load books and users from a YAML file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seeds.LoadFile(file)
			if err != nil {
				return err
			}

			database.ConnectDB()
			defer database.Close(database.DB)
			if err := database.Migrate(database.DB); err != nil {
				return err
			}

			res, err := seeds.Run(cmd.Context(), database.DB, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "books: %d inserted, %d skipped\nusers: %d inserted, %d skipped\n",
				res.BooksInserted, res.BooksSkipped, res.UsersInserted, res.UsersSkipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", seeds.DefaultFile, "seed file (YAML)")
	return cmd
}
