package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/youruser/mockupapp/internal/bundle"
	"github.com/youruser/mockupapp/internal/mockup"
)

func newGenerateCmd() *cobra.Command {
	var (
		tpls     []string
		client   string
		liveDate string
		outDir   string
		qrText   string
		zipIt    bool
	)

	cmd := &cobra.Command{
		Use:   "generate [artwork...]",
		Short: "Generate mockups for every template and artwork pair",
		Example: `  # One template, two pieces of artwork
  mockup generate -t "Albert Road" --client Acme --date 010725 "Acme - Summer - 48 Sheet.jpg" summer-alt.jpg

  # Several templates, bundled into Mock_Ups_Acme_010725.zip
  mockup generate -t "Albert Road" -t "Station Square Triptych" --client Acme --date 010725 --zip art.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gen, err := setup()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.OutputDir
			}

			res, err := gen.Run(mockup.Job{
				Templates: tpls,
				Artworks:  args,
				Client:    client,
				LiveDate:  liveDate,
				OutputDir: outDir,
				QRText:    qrText,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, o := range res.Outputs {
				fmt.Fprintf(out, "Generated: %s\n", o.Filename)
			}
			for _, e := range res.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", e)
			}

			if zipIt && len(res.Outputs) > 0 {
				b := bundle.Bundle{Name: bundle.ArchiveName(client, liveDate)}
				for _, o := range res.Outputs {
					b.Files = append(b.Files, bundle.File{Name: o.Filename, Path: o.Path})
				}
				path := filepath.Join(outDir, b.Name)
				if err := b.WriteZipFile(path); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				fmt.Fprintf(out, "Bundled: %s\n", path)
			}

			if len(res.Errors) > 0 {
				return fmt.Errorf("%d of %d mockups failed", len(res.Errors), len(res.Errors)+len(res.Outputs))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&tpls, "template", "t", nil, "Billboard template (repeatable)")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&liveDate, "date", "", "Live date (DDMMYY)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default $MOCKUP_OUTPUT_DIR)")
	cmd.Flags().StringVar(&qrText, "qr", "", "Stamp a QR code with this text onto each mockup")
	cmd.Flags().BoolVar(&zipIt, "zip", false, "Bundle the generated mockups into a zip archive")

	return cmd
}
