package cli

import (
	"github.com/spf13/cobra"
	"github.com/youruser/mockupapp/internal/api"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mockup HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gen, err := setup()
			if err != nil {
				return err
			}
			if port == "" {
				port = cfg.Port
			}
			return api.Serve(cmd.Context(), ":"+port, gen)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default $PORT or 8080)")

	return cmd
}
