package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/youruser/mockupapp/internal/config"
	"github.com/youruser/mockupapp/internal/mockup"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mockup",
		Short: "Composite artwork onto billboard templates",
		Long: `Mockup places campaign artwork onto billboard template photos using
perspective transforms and writes branded JPEG mockups.

Template coordinates come from the file named by MOCKUP_COORDINATES and
template images from MOCKUP_TEMPLATE_DIR.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

func setup() (config.Config, *mockup.Generator, error) {
	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, nil, err
	}
	gen, err := mockup.Setup(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, gen, nil
}
