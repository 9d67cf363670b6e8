package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guipadovan/library-manager/internals/configs"
	"github.com/guipadovan/library-manager/internals/features/library/googlebooks"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"

	"github.com/spf13/cobra"
)

func NewSearchBooksCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "search-books <title>",
		Short:        "Search Google Books by title and print the mapped records",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
			defer cancel()

			client := googlebooks.NewClient(configs.GoogleBooksBaseURL, configs.GoogleBooksAPIKey, nil)
			books, err := client.SearchByTitle(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range books {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n",
					b.BooksISBN, dbtime.FormatDate(time.Time(b.BooksPublicationDate)), b.BooksCategory, b.BooksAuthor, b.BooksTitle)
			}
			fmt.Fprintf(out, "%d book(s)\n", len(books))
			return nil
		},
	}
}
