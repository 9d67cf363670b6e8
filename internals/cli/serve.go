package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guipadovan/library-manager/internals/configs"
	database "github.com/guipadovan/library-manager/internals/databases"
	"github.com/guipadovan/library-manager/internals/features/library/googlebooks"
	routes "github.com/guipadovan/library-manager/internals/route"

	"github.com/spf13/cobra"
)

type ServeOptions struct {
	AutoMigrate bool
}

func NewServeCommand(opts *ServeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.AutoMigrate, "auto-migrate", opts.AutoMigrate, "apply migrations before serving")
	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	database.ConnectDB()
	database.TunePool()
	if opts.AutoMigrate {
		if err := database.Migrate(database.DB); err != nil {
			return err
		}
	}
	database.WarmUpQueries()

	searcher := googlebooks.NewClient(configs.GoogleBooksBaseURL, configs.GoogleBooksAPIKey, nil)

	app := routes.NewApp()
	routes.SetupRoutes(app, database.DB, searcher)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Listening on :%s", configs.AppPort)
		errCh <- app.Listen("0.0.0.0:" + configs.AppPort)
	}()

	// graceful shutdown + close the DB pool
	quit, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		database.Close(database.DB)
		return err
	case <-quit.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}
	database.Close(database.DB)
	log.Println("[INFO] Server stopped.")
	return nil
}
