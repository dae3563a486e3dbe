package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridastar/internal/logging"
	"github.com/pdrpinto/gridastar/internal/viz"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the step-by-step search visualiser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.New("viz")
			if !cmd.Flags().Changed("port") {
				if env := os.Getenv("PORT"); env != "" {
					port = env
				} else {
					logger.Infof("Defaulting to port %s", port)
				}
			}

			server := &http.Server{
				Addr:              ":" + port,
				Handler:           viz.NewServer(logger),
				ReadHeaderTimeout: 5 * time.Second,
			}
			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			logger.Infof("visualiser on http://localhost:%s", port)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "8080", "Listen port (default $PORT, then 8080)")
	return cmd
}
