package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/youruser/mockupapp/internal/templates"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates [query]",
		Short: "List billboard templates",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gen, err := setup()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range templates.Filter(gen.Catalog.Names(), strings.Join(args, " ")) {
				s, err := gen.Catalog.Lookup(n)
				if err != nil {
					fmt.Fprintf(out, "%s\t(invalid: %v)\n", templates.DisplayName(n), err)
					continue
				}
				keys := make([]string, 0, len(s.Panels))
				for _, p := range s.Panels {
					keys = append(keys, p.Key)
				}
				fmt.Fprintf(out, "%s\t%s\n", templates.DisplayName(n), strings.Join(keys, ","))
			}
			return nil
		},
	}
}
