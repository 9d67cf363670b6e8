package cli

import (
	"fmt"
	"time"

	"github.com/guipadovan/library-manager/internals/configs"
	"github.com/guipadovan/library-manager/internals/middlewares/auth"

	"github.com/spf13/cobra"
)

func NewAdminTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:          "admin-token",
		Short:        "Print a signed admin token for the /v1/admin routes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := auth.SignAdminToken(configs.JWTSecret, subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject (sub claim)")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	return cmd
}
